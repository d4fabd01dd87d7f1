package dto

import (
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerPayload identifies the customer being billed.
type CustomerPayload struct {
	Name        string `json:"name" binding:"required"`
	CID         string `json:"cid" binding:"required"`
	DiscordID   string `json:"discordID"`
	VehicleName string `json:"vehicleName"`
	PlateNumber string `json:"plateNumber"`
}

// RepairPayload is the structured repair description priced by the billing
// calculator. Empty damage strings mean "not being repaired".
type RepairPayload struct {
	VehicleCategory string          `json:"vehicleCategory" binding:"required,vehiclecategory"`
	EngineDamage    string          `json:"engineDamage" binding:"omitempty,damagelevel"`
	BodyDamage      string          `json:"bodyDamage" binding:"omitempty,damagelevel"`
	NumberOfDoors   int             `json:"numberOfDoors" binding:"gte=0"`
	NumberOfWindows int             `json:"numberOfWindows" binding:"gte=0"`
	NumberOfTyres   int             `json:"numberOfTyres" binding:"gte=0"`
	MotorOil        bool            `json:"motorOil"`
	RepairKits      int             `json:"numberOfRepairKits" binding:"gte=0"`
	Discount        decimal.Decimal `json:"discount"`
}

// ToRepairDetails converts the payload into the domain repair description.
func (p RepairPayload) ToRepairDetails() domain.RepairDetails {
	return domain.RepairDetails{
		VehicleCategory: domain.VehicleCategory(p.VehicleCategory),
		EngineDamage:    domain.DamageLevel(p.EngineDamage),
		BodyDamage:      domain.DamageLevel(p.BodyDamage),
		NumberOfDoors:   p.NumberOfDoors,
		NumberOfWindows: p.NumberOfWindows,
		NumberOfTyres:   p.NumberOfTyres,
		MotorOil:        p.MotorOil,
		RepairKits:      p.RepairKits,
		DiscountPercent: p.Discount,
	}
}

// CreateSaleRequest submits one completed repair for billing and recording.
type CreateSaleRequest struct {
	Customer CustomerPayload `json:"customerDetails" binding:"required"`
	Repair   RepairPayload   `json:"vehicleDetails" binding:"required"`
}

// SaleLineItemResponse is the API representation of one priced line.
type SaleLineItemResponse struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	DamageLevel string          `json:"damageLevel,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	StockPrice  decimal.Decimal `json:"stockPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// SaleResponse is the API representation of a stored sale.
type SaleResponse struct {
	SaleID          string                 `json:"saleID"`
	Timestamp       string                 `json:"timestamp"`
	Customer        domain.CustomerDetails `json:"customerDetails"`
	SoldBy          string                 `json:"soldBy"`
	SoldByDiscordID string                 `json:"soldByDiscordID"`
	Items           []SaleLineItemResponse `json:"items"`
	TotalBill       decimal.Decimal        `json:"totalBill"`
	TotalProfit     decimal.Decimal        `json:"totalProfit"`
	Discount        decimal.Decimal        `json:"discount"`
}

// ToSaleLineItemResponse converts one domain line item.
func ToSaleLineItemResponse(line domain.SaleLineItem) SaleLineItemResponse {
	return SaleLineItemResponse{
		ItemID:      line.ItemID,
		Name:        line.Name,
		Category:    string(line.Category),
		DamageLevel: string(line.DamageLevel),
		Quantity:    line.Quantity,
		Price:       line.UnitPrice,
		StockPrice:  line.UnitCost,
		TotalPrice:  line.TotalPrice,
		TotalProfit: line.TotalProfit,
	}
}

// ToSaleResponse converts a domain.Sale to its API representation.
func ToSaleResponse(sale *domain.Sale) SaleResponse {
	items := make([]SaleLineItemResponse, len(sale.LineItems))
	for i, line := range sale.LineItems {
		items[i] = ToSaleLineItemResponse(line)
	}
	return SaleResponse{
		SaleID:          sale.SaleID,
		Timestamp:       sale.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Customer:        sale.Customer,
		SoldBy:          sale.SoldBy,
		SoldByDiscordID: sale.SoldByDiscordID,
		Items:           items,
		TotalBill:       sale.TotalBill,
		TotalProfit:     sale.TotalProfit,
		Discount:        sale.DiscountPercent,
	}
}

// QuoteResponse is the billing calculator's output for a price preview.
type QuoteResponse struct {
	Items       []SaleLineItemResponse `json:"items"`
	TotalBill   decimal.Decimal        `json:"totalBill"`
	TotalProfit decimal.Decimal        `json:"totalProfit"`
}

// ToQuoteResponse converts a domain.RepairQuote to its API representation.
func ToQuoteResponse(quote *domain.RepairQuote) QuoteResponse {
	items := make([]SaleLineItemResponse, len(quote.Lines))
	for i, line := range quote.Lines {
		items[i] = ToSaleLineItemResponse(line)
	}
	return QuoteResponse{
		Items:       items,
		TotalBill:   quote.TotalBill,
		TotalProfit: quote.TotalProfit,
	}
}
