package repositories

import (
	"context"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
)

// ClockedTimeReader defines read operations for duty-time records.
// The timeclock store is maintained by an external system; this service
// only ever reads from it.
type ClockedTimeReader interface {
	// FindClockedTimesByDepartment retrieves all duty-time records for a department.
	FindClockedTimesByDepartment(ctx context.Context, departmentID string) ([]domain.ClockedTime, error)
}
