package domain_test

import (
	"testing"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCatalogItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.CatalogItem
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid damage-rated item",
			item: domain.CatalogItem{
				Name:        domain.ItemEngine,
				Category:    "Sedans",
				DamageLevel: domain.DamageMinor,
				Price:       decimal.NewFromInt(500),
				StockPrice:  decimal.NewFromInt(200),
			},
			wantErr: false,
		},
		{
			name: "valid counted part",
			item: domain.CatalogItem{
				Name:       domain.ItemDoor,
				Category:   "Muscle",
				Price:      decimal.NewFromInt(100),
				StockPrice: decimal.NewFromInt(40),
			},
			wantErr: false,
		},
		{
			name: "valid consumable without category",
			item: domain.CatalogItem{
				Name:       domain.ItemMotorOil,
				Price:      decimal.NewFromInt(50),
				StockPrice: decimal.NewFromInt(20),
			},
			wantErr: false,
		},
		{
			name: "unknown item name",
			item: domain.CatalogItem{
				Name:     "Spoiler",
				Category: "Sedans",
			},
			wantErr: true,
			errMsg:  "unknown item name",
		},
		{
			name: "negative price",
			item: domain.CatalogItem{
				Name:     domain.ItemDoor,
				Category: "Sedans",
				Price:    decimal.NewFromInt(-1),
			},
			wantErr: true,
			errMsg:  "price must be non-negative",
		},
		{
			name: "consumable must not carry a category",
			item: domain.CatalogItem{
				Name:     domain.ItemRepairKit,
				Category: "Sedans",
			},
			wantErr: true,
			errMsg:  "must not carry a vehicle category",
		},
		{
			name: "counted part requires a category",
			item: domain.CatalogItem{
				Name: domain.ItemTyres,
			},
			wantErr: true,
			errMsg:  "requires a valid vehicle category",
		},
		{
			name: "damage-rated item requires a damage level",
			item: domain.CatalogItem{
				Name:     domain.ItemBody,
				Category: "Sedans",
			},
			wantErr: true,
			errMsg:  "requires a valid damage level",
		},
		{
			name: "counted part must not carry a damage level",
			item: domain.CatalogItem{
				Name:        domain.ItemWindows,
				Category:    "Sedans",
				DamageLevel: domain.DamageMinor,
			},
			wantErr: true,
			errMsg:  "must not carry a damage level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemName_Kinds(t *testing.T) {
	assert.True(t, domain.ItemMotorOil.IsConsumable())
	assert.True(t, domain.ItemRepairKit.IsConsumable())
	assert.False(t, domain.ItemDoor.IsConsumable())

	assert.True(t, domain.ItemEngine.IsDamageRated())
	assert.True(t, domain.ItemBody.IsDamageRated())
	assert.False(t, domain.ItemTyres.IsDamageRated())
}
