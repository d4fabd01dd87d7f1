package repositories

import (
	"context"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// ItemReader defines read operations for catalog items
type ItemReader interface {
	// FindItemByID retrieves a specific catalog item by its ID.
	FindItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error)

	// FindItems retrieves the full catalog.
	FindItems(ctx context.Context) ([]domain.CatalogItem, error)
}

// ItemWriter defines write operations for catalog items
type ItemWriter interface {
	// SaveItem persists a new catalog item.
	SaveItem(ctx context.Context, item domain.CatalogItem) error

	// UpdateItem updates an existing catalog item.
	UpdateItem(ctx context.Context, item domain.CatalogItem) error

	// DeleteItem removes a catalog item permanently.
	DeleteItem(ctx context.Context, itemID string) error

	// AdjustStock decrements the stock counter by the sold quantity.
	AdjustStock(ctx context.Context, itemID string, delta int64) error
}

// ItemRepositoryFacade combines all catalog repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
