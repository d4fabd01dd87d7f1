package services

import (
	"context"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
)

// ItemReaderSvc defines read operations for the parts catalog
type ItemReaderSvc interface {
	// GetItemByID retrieves a catalog item by ID.
	GetItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error)

	// ListItems retrieves the full catalog.
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
}

// ItemWriterSvc defines catalog mutations. Mutations apply only to future
// sales; line items on historical sales keep their snapshot prices.
type ItemWriterSvc interface {
	// CreateItem validates and persists a new catalog item.
	CreateItem(ctx context.Context, creatorUserID string, req dto.CreateItemRequest) (*domain.CatalogItem, error)

	// UpdateItem updates prices and discriminators of an existing item.
	UpdateItem(ctx context.Context, updaterUserID string, itemID string, req dto.UpdateItemRequest) (*domain.CatalogItem, error)

	// DeleteItem removes a catalog item permanently.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemSvcFacade combines all catalog service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
