package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleReader ---
type MockSaleReader struct {
	mock.Mock
	FindSaleByIDFn func(ctx context.Context, saleID string) (*domain.Sale, error)
	FindSalesFn    func(ctx context.Context) ([]domain.Sale, error)
}

func (m *MockSaleReader) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	if m.FindSaleByIDFn != nil {
		return m.FindSaleByIDFn(ctx, saleID)
	}
	args := m.Called(ctx, saleID)
	var sale *domain.Sale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.Sale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleReader) FindSales(ctx context.Context) ([]domain.Sale, error) {
	if m.FindSalesFn != nil {
		return m.FindSalesFn(ctx)
	}
	args := m.Called(ctx)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockSaleRepo *MockSaleReader
	service      portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleReader)
	suite.service = services.NewReportingService(suite.mockSaleRepo)
}

func saleAt(ts time.Time, soldBy string, bill, profit int64) domain.Sale {
	return domain.Sale{
		SaleID:      "sale-" + ts.Format("20060102-150405") + "-" + soldBy,
		Timestamp:   ts,
		Customer:    domain.CustomerDetails{Name: "Customer", CID: "C-1"},
		SoldBy:      soldBy,
		TotalBill:   decimal.NewFromInt(bill),
		TotalProfit: decimal.NewFromInt(profit),
	}
}

func findTotal(rows []domain.EmployeePeriodTotal, employee string) (domain.EmployeePeriodTotal, bool) {
	for _, row := range rows {
		if row.Employee == employee {
			return row, true
		}
	}
	return domain.EmployeePeriodTotal{}, false
}

func (suite *ReportingServiceTestSuite) TestSalesReport_EmptyRecordSet() {
	ctx := context.Background()
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return nil, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Empty(report.SalesByEmployee.AllTime)
	suite.Empty(report.SalesByEmployee.Today)
	suite.Empty(report.SalesByEmployee.ThisWeek)
	suite.Empty(report.SalesByEmployee.ThisMonth)
	suite.Empty(report.SalesByEmployee.LastWeek)
	suite.Empty(report.SalesByEmployee.LastMonth)
	suite.Empty(report.SalesLogs)
}

func (suite *ReportingServiceTestSuite) TestSalesReport_ZeroTimestampRejected() {
	ctx := context.Background()
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{{SaleID: "broken"}}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
}

func (suite *ReportingServiceTestSuite) TestSalesReport_GroupsByEmployeeWithUnknown() {
	ctx := context.Background()
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			saleAt(ref, "Alice", 100, 40),
			saleAt(ref.Add(-time.Hour), "Bob", 200, 60),
			saleAt(ref.Add(-2*time.Hour), "Alice", 50, 10),
			saleAt(ref.Add(-3*time.Hour), "", 25, 5),
		}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)
	alice, ok := findTotal(report.SalesByEmployee.AllTime, "Alice")
	suite.Require().True(ok)
	suite.True(alice.TotalSales.Equal(decimal.NewFromInt(150)))
	suite.True(alice.TotalProfit.Equal(decimal.NewFromInt(50)))

	bob, ok := findTotal(report.SalesByEmployee.AllTime, "Bob")
	suite.Require().True(ok)
	suite.True(bob.TotalSales.Equal(decimal.NewFromInt(200)))

	unknown, ok := findTotal(report.SalesByEmployee.AllTime, domain.UnknownEmployee)
	suite.Require().True(ok)
	suite.True(unknown.TotalSales.Equal(decimal.NewFromInt(25)))

	// conservation: per-employee totals sum back to the raw bills
	sum := decimal.Zero
	for _, row := range report.SalesByEmployee.AllTime {
		sum = sum.Add(row.TotalSales)
	}
	suite.True(sum.Equal(decimal.NewFromInt(375)))
}

// The reference instant is the newest sale, so a dataset ending months ago
// still reports "today" relative to its own last activity.
func (suite *ReportingServiceTestSuite) TestSalesReport_ReferenceInstantIsLatestSale() {
	ctx := context.Background()
	ref := time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC) // a Friday
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			saleAt(ref.AddDate(0, 0, -40), "Alice", 10, 1),
			saleAt(ref, "Alice", 100, 10),
			saleAt(time.Date(2024, 5, 10, 2, 0, 0, 0, time.UTC), "Bob", 30, 3),
		}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)
	// Both the 18:30 and the 02:00 sale fall on the reference day.
	suite.Len(report.SalesByEmployee.Today, 2)
	alice, ok := findTotal(report.SalesByEmployee.Today, "Alice")
	suite.Require().True(ok)
	suite.True(alice.TotalSales.Equal(decimal.NewFromInt(100)))
}

// Monday boundary: with the reference on Monday 2024-01-08, the week window
// starts that same day and last week is exactly Jan 1 through Jan 7.
func (suite *ReportingServiceTestSuite) TestSalesReport_WeekBoundaryMonday() {
	ctx := context.Background()
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			saleAt(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), "Alice", 100, 10), // Monday, ref
			saleAt(time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), "Bob", 50, 5),  // Sunday before
			saleAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Carol", 20, 2),   // previous Monday
			saleAt(time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC), "Dave", 10, 1), // before last week
		}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)

	_, aliceThisWeek := findTotal(report.SalesByEmployee.ThisWeek, "Alice")
	suite.True(aliceThisWeek)
	_, aliceLastWeek := findTotal(report.SalesByEmployee.LastWeek, "Alice")
	suite.False(aliceLastWeek, "reference-day sale must not appear in last week")

	_, bobLastWeek := findTotal(report.SalesByEmployee.LastWeek, "Bob")
	suite.True(bobLastWeek)
	_, carolLastWeek := findTotal(report.SalesByEmployee.LastWeek, "Carol")
	suite.True(carolLastWeek, "last week start is inclusive")
	_, daveLastWeek := findTotal(report.SalesByEmployee.LastWeek, "Dave")
	suite.False(daveLastWeek, "sales before last week stay out of it")
}

// A Sunday reference anchors the week to the previous Monday.
func (suite *ReportingServiceTestSuite) TestSalesReport_SundayAnchorsToPreviousMonday() {
	ctx := context.Background()
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			saleAt(time.Date(2024, 1, 14, 20, 0, 0, 0, time.UTC), "Alice", 100, 10), // Sunday, ref
			saleAt(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), "Bob", 50, 5),       // Monday same week
			saleAt(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), "Carol", 20, 2),     // previous week
		}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)
	_, bobThisWeek := findTotal(report.SalesByEmployee.ThisWeek, "Bob")
	suite.True(bobThisWeek)
	_, carolThisWeek := findTotal(report.SalesByEmployee.ThisWeek, "Carol")
	suite.False(carolThisWeek)
	_, carolLastWeek := findTotal(report.SalesByEmployee.LastWeek, "Carol")
	suite.True(carolLastWeek)
}

// Window subset chain: today's totals are contained in this week's, which
// are contained in this month's, which are contained in all time.
func (suite *ReportingServiceTestSuite) TestSalesReport_WindowContainment() {
	ctx := context.Background()
	ref := time.Date(2024, 6, 19, 15, 0, 0, 0, time.UTC) // a Wednesday
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			saleAt(ref, "Alice", 100, 10),
			saleAt(ref.AddDate(0, 0, -1), "Alice", 40, 4),  // this week, not today
			saleAt(ref.AddDate(0, 0, -10), "Alice", 30, 3), // this month, not this week
			saleAt(ref.AddDate(0, -2, 0), "Alice", 20, 2),  // all time only
		}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)
	today, _ := findTotal(report.SalesByEmployee.Today, "Alice")
	week, _ := findTotal(report.SalesByEmployee.ThisWeek, "Alice")
	month, _ := findTotal(report.SalesByEmployee.ThisMonth, "Alice")
	all, _ := findTotal(report.SalesByEmployee.AllTime, "Alice")

	suite.True(today.TotalSales.Equal(decimal.NewFromInt(100)))
	suite.True(week.TotalSales.Equal(decimal.NewFromInt(140)))
	suite.True(month.TotalSales.Equal(decimal.NewFromInt(170)))
	suite.True(all.TotalSales.Equal(decimal.NewFromInt(190)))
}

// Last month is the half-open previous calendar month, disjoint from this month.
func (suite *ReportingServiceTestSuite) TestSalesReport_LastMonthBoundaries() {
	ctx := context.Background()
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			saleAt(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), "Alice", 100, 10), // ref, March
			saleAt(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Bob", 50, 5),       // March 1, this month
			saleAt(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), "Carol", 20, 2), // leap Feb, last month
			saleAt(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "Dave", 10, 1),      // Feb 1, last month
			saleAt(time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), "Eve", 5, 1),      // January, out
		}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)
	_, bobLastMonth := findTotal(report.SalesByEmployee.LastMonth, "Bob")
	suite.False(bobLastMonth)
	_, carolLastMonth := findTotal(report.SalesByEmployee.LastMonth, "Carol")
	suite.True(carolLastMonth)
	_, daveLastMonth := findTotal(report.SalesByEmployee.LastMonth, "Dave")
	suite.True(daveLastMonth)
	_, eveLastMonth := findTotal(report.SalesByEmployee.LastMonth, "Eve")
	suite.False(eveLastMonth)
}

func (suite *ReportingServiceTestSuite) TestSalesReport_LogFormatting() {
	ctx := context.Background()
	ts := time.Date(2024, 7, 3, 9, 5, 7, 0, time.UTC)
	sale := saleAt(ts, "Alice", 100, 10)
	sale.Customer.VehicleName = "Sultan"
	sale.Customer.PlateNumber = "AB123CD"
	sale.Repair.VehicleCategory = "Sedans"
	sale.LineItems = []domain.SaleLineItem{
		{Name: "Engine", Category: "Sedans", DamageLevel: "Minor", Quantity: 1,
			UnitPrice: decimal.NewFromInt(500), TotalPrice: decimal.NewFromInt(500)},
	}
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{sale}, nil
	}

	report, err := suite.service.SalesReport(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.SalesLogs, 1)
	entry := report.SalesLogs[0]
	suite.Equal("03/07/2024", entry.Date)
	suite.Equal("09:05:07", entry.Time)
	suite.Equal("Alice", entry.SoldBy)
	suite.Equal("Sultan", entry.VehicleName)
	suite.Require().Len(entry.Items, 1)
	suite.Equal("Engine", entry.Items[0].Name)
}

func (suite *ReportingServiceTestSuite) TestLeaderboard_QuotaThreshold() {
	ctx := context.Background()
	ref := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	var sales []domain.Sale
	for i := 0; i < domain.RepairQuotaThreshold; i++ { // exactly 60
		sales = append(sales, saleAt(ref.Add(time.Duration(i)*time.Minute), "Alice", 10, 1))
	}
	for i := 0; i < domain.RepairQuotaThreshold-1; i++ { // 59
		sales = append(sales, saleAt(ref.Add(time.Duration(i)*time.Second), "Bob", 10, 1))
	}
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return sales, nil
	}

	board, err := suite.service.RepairLeaderboard(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(board.QuotaCompleted, 1)
	suite.Equal("Alice", board.QuotaCompleted[0].Name)
	suite.Equal(domain.RepairQuotaThreshold, board.QuotaCompleted[0].Count)
	suite.Require().Len(board.QuotaNotCompleted, 1)
	suite.Equal("Bob", board.QuotaNotCompleted[0].Name)
	// the partition covers the whole ranking
	suite.Len(board.Employees, len(board.QuotaCompleted)+len(board.QuotaNotCompleted))
}

func (suite *ReportingServiceTestSuite) TestLeaderboard_RankingAndTieBreak() {
	ctx := context.Background()
	ref := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt(ref, "Zoe", 10, 1),
		saleAt(ref.Add(time.Minute), "Amy", 10, 1),
		saleAt(ref.Add(2*time.Minute), "Amy", 10, 1),
		saleAt(ref.Add(3*time.Minute), "Mia", 10, 1),
	}
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return sales, nil
	}

	board, err := suite.service.RepairLeaderboard(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(board.Employees, 3)
	suite.Equal("Amy", board.Employees[0].Name)
	// Mia and Zoe tie on one repair each; ties rank ascending by name.
	suite.Equal("Mia", board.Employees[1].Name)
	suite.Equal("Zoe", board.Employees[2].Name)
}

func (suite *ReportingServiceTestSuite) TestLeaderboard_DateFilterInclusive() {
	ctx := context.Background()
	sales := []domain.Sale{
		saleAt(time.Date(2024, 4, 1, 23, 59, 0, 0, time.UTC), "Alice", 10, 1),
		saleAt(time.Date(2024, 4, 5, 0, 0, 1, 0, time.UTC), "Bob", 10, 1),
		saleAt(time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC), "Carol", 10, 1),
	}
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return sales, nil
	}

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	board, err := suite.service.RepairLeaderboard(ctx, &from, &to)

	suite.Require().NoError(err)
	suite.Len(board.Employees, 2)
	_, hasCarol := findCount(board.Employees, "Carol")
	suite.False(hasCarol)
}

func (suite *ReportingServiceTestSuite) TestLeaderboard_FilterNeedsBothBounds() {
	ctx := context.Background()
	sales := []domain.Sale{
		saleAt(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC), "Alice", 10, 1),
		saleAt(time.Date(2024, 4, 9, 12, 0, 0, 0, time.UTC), "Bob", 10, 1),
	}
	suite.mockSaleRepo.FindSalesFn = func(ctx context.Context) ([]domain.Sale, error) {
		return sales, nil
	}

	from := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	board, err := suite.service.RepairLeaderboard(ctx, &from, nil)

	suite.Require().NoError(err)
	// A lone bound is ignored; the full record set is counted.
	suite.Len(board.Employees, 2)
}

func findCount(rows []domain.NameCount, name string) (domain.NameCount, bool) {
	for _, row := range rows {
		if row.Name == name {
			return row, true
		}
	}
	return domain.NameCount{}, false
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
