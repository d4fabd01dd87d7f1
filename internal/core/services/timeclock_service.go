package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
)

type timeclockService struct {
	BaseService
	clockedTimeRepo portsrepo.ClockedTimeReader
	departmentID    string
}

// NewTimeclockService creates the duty-time report service, pinned to the
// shop's department in the shared timeclock store.
func NewTimeclockService(clockedTimeRepo portsrepo.ClockedTimeReader, departmentID string) portssvc.TimeclockSvc {
	return &timeclockService{
		clockedTimeRepo: clockedTimeRepo,
		departmentID:    departmentID,
	}
}

var _ portssvc.TimeclockSvc = (*timeclockService)(nil)

func (s *timeclockService) ListClockedTimes(ctx context.Context) ([]domain.ClockedTime, error) {
	times, err := s.clockedTimeRepo.FindClockedTimesByDepartment(ctx, s.departmentID)
	if err != nil {
		s.LogError(ctx, err, "failed to list clocked times", slog.String("department_id", s.departmentID))
		return nil, fmt.Errorf("failed to list clocked times: %w", err)
	}
	return times, nil
}
