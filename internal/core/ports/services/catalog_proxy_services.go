package services

import (
	"context"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// VehicleCatalogSvc fronts the external vehicle and character registries.
// Implementations own the TTL cache; callers always receive a fully
// materialized collection.
type VehicleCatalogSvc interface {
	// SearchVehicles returns vehicles whose name contains the query,
	// case-insensitively. An empty query returns the full catalog.
	SearchVehicles(ctx context.Context, query string) ([]domain.VehicleInfo, error)

	// ListCharacters returns the external character registry.
	ListCharacters(ctx context.Context) ([]domain.CharacterInfo, error)
}

// Notifier posts a plain-text message to the shop's Discord webhook.
// Failures are reported to the caller but are never fatal to the triggering
// operation.
type Notifier interface {
	Notify(ctx context.Context, content string) error
}
