package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerDetails identifies who the repair was billed to. Name and CID are
// free text supplied by staff; there is no canonical customer registry.
type CustomerDetails struct {
	Name        string `json:"name"`
	CID         string `json:"cid"`
	DiscordID   string `json:"discordID"`
	VehicleName string `json:"vehicleName,omitempty"`
	PlateNumber string `json:"plateNumber,omitempty"` // uppercased at entry
}

// RepairDetails is the structured description of the work performed on one
// vehicle, as captured on the sales form. It is stored on the sale verbatim.
type RepairDetails struct {
	VehicleCategory VehicleCategory `json:"vehicleCategory"`
	EngineDamage    DamageLevel     `json:"engineDamage,omitempty"` // empty = not repaired
	BodyDamage      DamageLevel     `json:"bodyDamage,omitempty"`   // empty = not repaired
	NumberOfDoors   int             `json:"numberOfDoors"`
	NumberOfWindows int             `json:"numberOfWindows"`
	NumberOfTyres   int             `json:"numberOfTyres"`
	MotorOil        bool            `json:"motorOil"`
	RepairKits      int             `json:"numberOfRepairKits"`
	DiscountPercent decimal.Decimal `json:"discount"`
}

// SaleLineItem is one priced part/service within a sale. Prices are a
// snapshot of the catalog at sale time; later catalog changes never alter
// historical records.
type SaleLineItem struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Category    VehicleCategory `json:"category,omitempty"`
	DamageLevel DamageLevel     `json:"damageLevel,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`      // discounted sale price per unit
	UnitCost    decimal.Decimal `json:"stockPrice"` // cost per unit, never discounted
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// Sale represents one completed repair billed to a customer. Created exactly
// once at submission, never mutated, hard-deletable by manager and above.
// TotalBill and TotalProfit are computed at creation time and stored;
// consumers must trust the stored aggregates as authoritative.
type Sale struct {
	SaleID          string          `json:"saleID"` // Primary Key (UUID)
	Timestamp       time.Time       `json:"timestamp"`
	Customer        CustomerDetails `json:"customerDetails"`
	Repair          RepairDetails   `json:"vehicleDetails"`
	SoldBy          string          `json:"soldBy"` // character name snapshot
	SoldByDiscordID string          `json:"soldByDiscordID"`
	LineItems       []SaleLineItem  `json:"items"`
	TotalBill       decimal.Decimal `json:"totalBill"`
	TotalProfit     decimal.Decimal `json:"totalProfit"`
	DiscountPercent decimal.Decimal `json:"discount"`
	AuditFields
}

// ClockedTime is one staff member's accumulated duty time, maintained by the
// external timeclock system and read here for the duty report.
type ClockedTime struct {
	RecordID      string    `json:"recordID"`
	UserID        string    `json:"userID"`
	DepartmentID  string    `json:"departmentID"`
	CharacterName string    `json:"characterName"`
	TotalSeconds  int64     `json:"totalTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
