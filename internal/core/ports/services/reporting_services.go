package services

import (
	"context"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// ReportingService defines operations for generating sales reports
type ReportingService interface {
	// SalesReport generates the six-window per-employee aggregation and the
	// display-ready sales log over the complete historical record set.
	SalesReport(ctx context.Context) (*domain.SalesReport, error)

	// RepairLeaderboard counts repairs per customer and per employee,
	// optionally restricted to an inclusive calendar-date range, then ranks.
	// Both bounds must be supplied for the filter to apply.
	RepairLeaderboard(ctx context.Context, from, to *time.Time) (*domain.RepairLeaderboard, error)
}

// TimeclockSvc defines the duty-time report read.
type TimeclockSvc interface {
	// ListClockedTimes retrieves duty-time records for the shop's department.
	ListClockedTimes(ctx context.Context) ([]domain.ClockedTime, error)
}
