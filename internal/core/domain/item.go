package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemName is one of the fixed set of part/service kinds the shop sells.
type ItemName string

const (
	ItemEngine    ItemName = "Engine"
	ItemBody      ItemName = "Body"
	ItemDoor      ItemName = "Door"
	ItemTyres     ItemName = "Tyres"
	ItemWindows   ItemName = "Windows"
	ItemMotorOil  ItemName = "Motor Oil"
	ItemRepairKit ItemName = "Advanced Repair Kit"
)

// ItemNames lists every sellable kind. Motor Oil and the Advanced Repair Kit
// are consumables priced independently of the vehicle; Engine and Body are
// additionally priced per damage level.
var ItemNames = []ItemName{
	ItemEngine, ItemBody, ItemDoor, ItemTyres, ItemWindows, ItemMotorOil, ItemRepairKit,
}

// VehicleCategory partitions the catalog: the same part has a different
// price per category.
type VehicleCategory string

// VehicleCategories is the closed set of valid catalog partitions.
var VehicleCategories = []VehicleCategory{
	"Compacts", "Cycles", "EDM", "Emergency", "Motorcycles", "Muscle",
	"Off-Road", "Sedans", "Service & Utility", "Sports", "Sports Classic",
	"Super", "SUVs", "Trailers", "Vans",
}

// DamageLevel rates engine/body damage. The set is ordered; DamageNone is a
// sentinel meaning "not being repaired" and never produces a line item.
type DamageLevel string

const (
	DamageNone     DamageLevel = "None"
	DamageMinor    DamageLevel = "Minor"
	DamageModerate DamageLevel = "Moderate"
	DamageHeavy    DamageLevel = "Heavy"
	DamageSevere   DamageLevel = "Severe"
	DamageExtreme  DamageLevel = "Extreme"
)

// DamageLevels lists all damage ratings from least to most severe.
var DamageLevels = []DamageLevel{
	DamageNone, DamageMinor, DamageModerate, DamageHeavy, DamageSevere, DamageExtreme,
}

// IsValidItemName reports whether name is a sellable kind.
func IsValidItemName(name ItemName) bool {
	for _, n := range ItemNames {
		if n == name {
			return true
		}
	}
	return false
}

// IsValidVehicleCategory reports whether category is a catalog partition.
func IsValidVehicleCategory(category VehicleCategory) bool {
	for _, c := range VehicleCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidDamageLevel reports whether level is a known damage rating.
func IsValidDamageLevel(level DamageLevel) bool {
	for _, d := range DamageLevels {
		if d == level {
			return true
		}
	}
	return false
}

// IsConsumable reports whether the kind is priced without a vehicle
// category (Motor Oil, Advanced Repair Kit).
func (n ItemName) IsConsumable() bool {
	return n == ItemMotorOil || n == ItemRepairKit
}

// IsDamageRated reports whether the kind requires a damage level (Engine, Body).
func (n ItemName) IsDamageRated() bool {
	return n == ItemEngine || n == ItemBody
}

// CatalogItem represents a purchasable part or service definition.
// The combination (Name, Category, DamageLevel) is the effective lookup key
// when pricing a repair.
type CatalogItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	Name        ItemName        `json:"name"`
	Price       decimal.Decimal `json:"price"`      // sale price
	StockPrice  decimal.Decimal `json:"stockPrice"` // cost
	Category    VehicleCategory `json:"category,omitempty"`
	DamageLevel DamageLevel     `json:"damageLevel,omitempty"`
	Stock       int64           `json:"stock"`
	AuditFields
}

// Validate enforces the catalog discriminator invariant: a required
// category/damage level missing for the item's kind makes the item invalid.
func (i *CatalogItem) Validate() error {
	if !IsValidItemName(i.Name) {
		return fmt.Errorf("unknown item name %q", i.Name)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("price must be non-negative, got %s", i.Price)
	}
	if i.StockPrice.IsNegative() {
		return fmt.Errorf("stock price must be non-negative, got %s", i.StockPrice)
	}
	if i.Name.IsConsumable() {
		if i.Category != "" {
			return fmt.Errorf("item %q must not carry a vehicle category", i.Name)
		}
	} else if !IsValidVehicleCategory(i.Category) {
		return fmt.Errorf("item %q requires a valid vehicle category, got %q", i.Name, i.Category)
	}
	if i.Name.IsDamageRated() {
		if !IsValidDamageLevel(i.DamageLevel) {
			return fmt.Errorf("item %q requires a valid damage level, got %q", i.Name, i.DamageLevel)
		}
	} else if i.DamageLevel != "" {
		return fmt.Errorf("item %q must not carry a damage level", i.Name)
	}
	return nil
}
