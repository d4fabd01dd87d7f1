package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the database row shape for one transaction record. The customer
// and repair snapshots are flattened into columns; line items live in
// sale_line_items.
type Sale struct {
	SaleID              string          `db:"sale_id"`
	Timestamp           time.Time       `db:"sale_timestamp"`
	CustomerName        string          `db:"customer_name"`
	CustomerCID         string          `db:"customer_cid"`
	CustomerDiscordID   string          `db:"customer_discord_id"`
	VehicleName         sql.NullString  `db:"vehicle_name"`
	PlateNumber         sql.NullString  `db:"plate_number"`
	VehicleCategory     string          `db:"vehicle_category"`
	EngineDamage        sql.NullString  `db:"engine_damage"`
	BodyDamage          sql.NullString  `db:"body_damage"`
	NumberOfDoors       int             `db:"number_of_doors"`
	NumberOfWindows     int             `db:"number_of_windows"`
	NumberOfTyres       int             `db:"number_of_tyres"`
	MotorOil            bool            `db:"motor_oil"`
	NumberOfRepairKits  int             `db:"number_of_repair_kits"`
	SoldBy              string          `db:"sold_by"`
	SoldByDiscordID     string          `db:"sold_by_discord_id"`
	TotalBill           decimal.Decimal `db:"total_bill"`
	TotalProfit         decimal.Decimal `db:"total_profit"`
	DiscountPercent     decimal.Decimal `db:"discount_percent"`
	AuditFields
}

// SaleLineItem is the database row shape for one priced line within a sale.
type SaleLineItem struct {
	LineID      string          `db:"line_id"`
	SaleID      string          `db:"sale_id"`
	ItemID      string          `db:"item_id"`
	Name        string          `db:"name"`
	Category    sql.NullString  `db:"category"`
	DamageLevel sql.NullString  `db:"damage_level"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
	TotalPrice  decimal.Decimal `db:"total_price"`
	TotalProfit decimal.Decimal `db:"total_profit"`
	Position    int             `db:"position"`
}

// ClockedTime is the database row shape for one duty-time record.
type ClockedTime struct {
	RecordID      string    `db:"record_id"`
	UserID        string    `db:"user_id"`
	DepartmentID  string    `db:"department_id"`
	CharacterName string    `db:"character_name"`
	TotalSeconds  int64     `db:"total_seconds"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
