package domain

import "github.com/shopspring/decimal"

// RepairQuote is the billing calculator's output: the priced lines for a
// structured repair description plus the aggregate totals. TotalProfit is
// computed against the discounted price, so discounts reduce recorded
// profit, not just revenue.
type RepairQuote struct {
	Lines       []SaleLineItem  `json:"items"`
	TotalBill   decimal.Decimal `json:"totalBill"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// DiscordUserInfo is the identity payload fetched from Discord after the
// OAuth2 code exchange.
type DiscordUserInfo struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
}

// VehicleInfo is one entry of the external vehicle catalog.
type VehicleInfo struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// CharacterInfo is one entry of the external character registry.
type CharacterInfo struct {
	CharacterName string `json:"characterName"`
	CID           string `json:"cid"`
}
