package dto

import (
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the payload for adding a catalog item.
// Category and DamageLevel are conditionally required depending on Name;
// that invariant is enforced by domain validation, not binding tags.
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	StockPrice  decimal.Decimal `json:"stockPrice"`
	Category    string          `json:"category"`
	DamageLevel string          `json:"damageLevel"`
	Stock       int64           `json:"stock"`
}

// UpdateItemRequest defines the payload for updating a catalog item.
// The item's name (its kind) is immutable.
type UpdateItemRequest struct {
	Price       decimal.Decimal `json:"price"`
	StockPrice  decimal.Decimal `json:"stockPrice"`
	Category    string          `json:"category"`
	DamageLevel string          `json:"damageLevel"`
}

// ItemResponse is the API representation of a catalog item.
type ItemResponse struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	StockPrice  decimal.Decimal `json:"stockPrice"`
	Category    string          `json:"category,omitempty"`
	DamageLevel string          `json:"damageLevel,omitempty"`
	Stock       int64           `json:"stock"`
}

// ListItemsResponse wraps the full catalog.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain.CatalogItem to its API representation.
func ToItemResponse(item *domain.CatalogItem) ItemResponse {
	return ItemResponse{
		ItemID:      item.ItemID,
		Name:        string(item.Name),
		Price:       item.Price,
		StockPrice:  item.StockPrice,
		Category:    string(item.Category),
		DamageLevel: string(item.DamageLevel),
		Stock:       item.Stock,
	}
}

// ToListItemsResponse converts a catalog slice to ListItemsResponse.
func ToListItemsResponse(items []domain.CatalogItem) ListItemsResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(&item)
	}
	return ListItemsResponse{Items: responses}
}
