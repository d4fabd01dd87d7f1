package services

import (
	"context"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
)

// SaleSvcFacade defines operations on transaction records.
type SaleSvcFacade interface {
	// CreateSale prices the submitted repair against the current catalog,
	// persists the sale with a server-side timestamp and the seller snapshot,
	// and decrements catalog stock. The stored record is returned.
	CreateSale(ctx context.Context, sellerUserID string, req dto.CreateSaleRequest) (*domain.Sale, error)

	// GetSaleByID retrieves a single sale.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// DeleteSale removes a sale permanently. Restricted to manager and above.
	DeleteSale(ctx context.Context, actorUserID string, saleID string) error
}

// PricingSvc is the pure billing calculator: it prices a structured repair
// description against the current catalog without persisting anything.
type PricingSvc interface {
	// PriceRepair produces the priced line items and totals for a repair.
	// A lookup miss for a candidate line silently omits that line.
	PriceRepair(ctx context.Context, repair domain.RepairDetails) (*domain.RepairQuote, error)
}
