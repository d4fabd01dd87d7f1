package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	saleRepo portsrepo.SaleReader
}

// NewReportingService creates the sales aggregation service.
func NewReportingService(saleRepo portsrepo.SaleReader) portssvc.ReportingService {
	return &reportingService{saleRepo: saleRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// periodWindows holds the six calendar window boundaries, all derived from
// the reference instant in UTC. The "last" windows are half-open
// [start, end); the current windows are open-ended since no sale can sit
// beyond the reference instant.
type periodWindows struct {
	dayStart       time.Time
	weekStart      time.Time
	monthStart     time.Time
	lastWeekStart  time.Time
	lastMonthStart time.Time
}

// startOfWeekUTC returns the Monday 00:00:00 UTC on or before t.
func startOfWeekUTC(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(day.Weekday()) // Sunday == 0
	if weekday == 0 {
		return day.AddDate(0, 0, -6)
	}
	return day.AddDate(0, 0, 1-weekday)
}

func windowsAt(ref time.Time) periodWindows {
	ref = ref.UTC()
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := startOfWeekUTC(ref)
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return periodWindows{
		dayStart:       dayStart,
		weekStart:      weekStart,
		monthStart:     monthStart,
		lastWeekStart:  weekStart.AddDate(0, 0, -7),
		lastMonthStart: monthStart.AddDate(0, -1, 0),
	}
}

// employeeKey resolves the grouping key for a sale's seller.
func employeeKey(sale domain.Sale) string {
	if sale.SoldBy == "" {
		return domain.UnknownEmployee
	}
	return sale.SoldBy
}

// accumulate folds one sale into a per-employee running total map.
func accumulate(totals map[string]*domain.EmployeePeriodTotal, sale domain.Sale) {
	key := employeeKey(sale)
	t, ok := totals[key]
	if !ok {
		t = &domain.EmployeePeriodTotal{Employee: key, TotalSales: decimal.Zero, TotalProfit: decimal.Zero}
		totals[key] = t
	}
	t.TotalSales = t.TotalSales.Add(sale.TotalBill)
	t.TotalProfit = t.TotalProfit.Add(sale.TotalProfit)
}

// flatten turns a totals map into a slice ordered by employee name so the
// output is deterministic. The result is never nil.
func flatten(totals map[string]*domain.EmployeePeriodTotal) []domain.EmployeePeriodTotal {
	out := make([]domain.EmployeePeriodTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Employee < out[j].Employee })
	return out
}

// bucketSales computes the six windowed per-employee groupings. The
// reference instant is the latest sale timestamp, so the dataset reports on
// its own newest activity rather than on the wall clock.
func bucketSales(sales []domain.Sale) domain.SalesByEmployee {
	empty := domain.SalesByEmployee{
		AllTime:   []domain.EmployeePeriodTotal{},
		Today:     []domain.EmployeePeriodTotal{},
		ThisWeek:  []domain.EmployeePeriodTotal{},
		ThisMonth: []domain.EmployeePeriodTotal{},
		LastWeek:  []domain.EmployeePeriodTotal{},
		LastMonth: []domain.EmployeePeriodTotal{},
	}
	if len(sales) == 0 {
		return empty
	}

	ref := sales[0].Timestamp
	for _, sale := range sales[1:] {
		if sale.Timestamp.After(ref) {
			ref = sale.Timestamp
		}
	}
	w := windowsAt(ref)

	allTime := make(map[string]*domain.EmployeePeriodTotal)
	today := make(map[string]*domain.EmployeePeriodTotal)
	thisWeek := make(map[string]*domain.EmployeePeriodTotal)
	thisMonth := make(map[string]*domain.EmployeePeriodTotal)
	lastWeek := make(map[string]*domain.EmployeePeriodTotal)
	lastMonth := make(map[string]*domain.EmployeePeriodTotal)

	for _, sale := range sales {
		ts := sale.Timestamp.UTC()
		accumulate(allTime, sale)
		if !ts.Before(w.dayStart) {
			accumulate(today, sale)
		}
		if !ts.Before(w.weekStart) {
			accumulate(thisWeek, sale)
		}
		if !ts.Before(w.monthStart) {
			accumulate(thisMonth, sale)
		}
		if !ts.Before(w.lastWeekStart) && ts.Before(w.weekStart) {
			accumulate(lastWeek, sale)
		}
		if !ts.Before(w.lastMonthStart) && ts.Before(w.monthStart) {
			accumulate(lastMonth, sale)
		}
	}

	return domain.SalesByEmployee{
		AllTime:   flatten(allTime),
		Today:     flatten(today),
		ThisWeek:  flatten(thisWeek),
		ThisMonth: flatten(thisMonth),
		LastWeek:  flatten(lastWeek),
		LastMonth: flatten(lastMonth),
	}
}

// toSaleLogEntry flattens one sale for display. Dates render DD/MM/YYYY and
// times HH:MM:SS, both UTC.
func toSaleLogEntry(sale domain.Sale) domain.SaleLogEntry {
	ts := sale.Timestamp.UTC()
	items := make([]domain.SaleLogItem, len(sale.LineItems))
	for i, line := range sale.LineItems {
		items[i] = domain.SaleLogItem{
			Name:        line.Name,
			Category:    line.Category,
			DamageLevel: line.DamageLevel,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.TotalPrice,
		}
	}
	return domain.SaleLogEntry{
		SaleID:          sale.SaleID,
		Date:            ts.Format("02/01/2006"),
		Time:            ts.Format("15:04:05"),
		CustomerName:    sale.Customer.Name,
		CustomerID:      sale.Customer.CID,
		VehicleName:     sale.Customer.VehicleName,
		PlateNumber:     sale.Customer.PlateNumber,
		VehicleCategory: sale.Repair.VehicleCategory,
		SoldBy:          employeeKey(sale),
		SoldByDiscordID: sale.SoldByDiscordID,
		Items:           items,
		TotalSales:      sale.TotalBill,
		TotalProfit:     sale.TotalProfit,
		Discount:        sale.DiscountPercent,
	}
}

func validateSaleTimestamps(sales []domain.Sale) error {
	for _, sale := range sales {
		if sale.Timestamp.IsZero() {
			return fmt.Errorf("%w: sale %s has no timestamp", apperrors.ErrValidation, sale.SaleID)
		}
	}
	return nil
}

// SalesReport loads the full record set and produces the six-window
// grouping plus the display log. An empty record set yields an empty report.
func (s *reportingService) SalesReport(ctx context.Context) (*domain.SalesReport, error) {
	sales, err := s.saleRepo.FindSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load sales for report")
		return nil, fmt.Errorf("failed to load sales for report: %w", err)
	}
	if err := validateSaleTimestamps(sales); err != nil {
		return nil, err
	}

	logs := make([]domain.SaleLogEntry, len(sales))
	for i, sale := range sales {
		logs[i] = toSaleLogEntry(sale)
	}

	report := &domain.SalesReport{
		SalesByEmployee: bucketSales(sales),
		SalesLogs:       logs,
	}
	s.LogDebug(ctx, "sales report generated", slog.Int("sale_count", len(sales)))
	return report, nil
}

// rankCounts turns a name->count map into rows ordered by descending count,
// ties broken ascending by name.
func rankCounts(counts map[string]int) []domain.NameCount {
	out := make([]domain.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// inDateRange reports whether the sale's UTC calendar date falls inside the
// inclusive [from, to] date range.
func inDateRange(ts, from, to time.Time) bool {
	d := ts.UTC()
	date := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	f := from.UTC()
	fromDate := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	t := to.UTC()
	toDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(fromDate) && !date.After(toDate)
}

// RepairLeaderboard counts repairs per customer and per employee, optionally
// restricted to a calendar-date range. The range applies only when both
// bounds are given.
func (s *reportingService) RepairLeaderboard(ctx context.Context, from, to *time.Time) (*domain.RepairLeaderboard, error) {
	sales, err := s.saleRepo.FindSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load sales for leaderboard")
		return nil, fmt.Errorf("failed to load sales for leaderboard: %w", err)
	}
	if err := validateSaleTimestamps(sales); err != nil {
		return nil, err
	}

	customerCounts := make(map[string]int)
	employeeCounts := make(map[string]int)
	for _, sale := range sales {
		if from != nil && to != nil && !inDateRange(sale.Timestamp, *from, *to) {
			continue
		}
		customer := sale.Customer.Name
		if customer == "" {
			customer = domain.UnknownEmployee
		}
		customerCounts[customer]++
		employeeCounts[employeeKey(sale)]++
	}

	employees := rankCounts(employeeCounts)
	completed := []domain.NameCount{}
	notCompleted := []domain.NameCount{}
	for _, row := range employees {
		if row.Count >= domain.RepairQuotaThreshold {
			completed = append(completed, row)
		} else {
			notCompleted = append(notCompleted, row)
		}
	}

	return &domain.RepairLeaderboard{
		Customers:         rankCounts(customerCounts),
		Employees:         employees,
		QuotaCompleted:    completed,
		QuotaNotCompleted: notCompleted,
	}, nil
}
