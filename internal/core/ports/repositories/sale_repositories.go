package repositories

import (
	"context"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// SaleReader defines read operations for transaction records
type SaleReader interface {
	// FindSaleByID retrieves a specific sale by its ID.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSales retrieves the complete historical set of sales.
	// Period bucketing needs the whole set, so there is no pagination here.
	FindSales(ctx context.Context) ([]domain.Sale, error)
}

// SaleWriter defines write operations for transaction records
type SaleWriter interface {
	// SaveSale persists a new sale with its line items.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// DeleteSale removes a sale permanently (hard delete, irreversible).
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
