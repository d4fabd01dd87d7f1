package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Item is the database row shape for a catalog item. Category and
// damage_level are NULL for kinds that do not carry them.
type Item struct {
	ItemID      string          `db:"item_id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	StockPrice  decimal.Decimal `db:"stock_price"`
	Category    sql.NullString  `db:"category"`
	DamageLevel sql.NullString  `db:"damage_level"`
	Stock       int64           `db:"stock"`
	AuditFields
}
