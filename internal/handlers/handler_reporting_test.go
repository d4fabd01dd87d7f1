package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/mprs-garage/repair_shop_app/internal/handlers"
	"github.com/mprs-garage/repair_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) SalesReport(ctx context.Context) (*domain.SalesReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}

func (m *MockReportingService) RepairLeaderboard(ctx context.Context, from, to *time.Time) (*domain.RepairLeaderboard, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepairLeaderboard), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock UserReaderSvc (role gate) ---
type MockUserReader struct {
	mock.Mock
	GetUserByIDFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portssvc.UserReaderSvc = (*MockUserReader)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	mockUserReader       *MockUserReader
	jwtSecret            string
}

func (suite *ReportingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "mprs-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReportingService = new(MockReportingService)
	suite.mockUserReader = new(MockUserReader)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReportingRoutes(v1, suite.mockReportingService, middleware.RequireApproved(suite.mockUserReader))
}

func (suite *ReportingHandlerTestSuite) approvedUser() {
	suite.mockUserReader.GetUserByIDFn = func(ctx context.Context, id string) (*domain.User, error) {
		return &domain.User{UserID: id, Role: domain.RoleMechanic, IsApproved: true}, nil
	}
}

func (suite *ReportingHandlerTestSuite) TestSalesChart_Success() {
	userID := uuid.NewString()
	suite.approvedUser()

	report := &domain.SalesReport{
		SalesByEmployee: domain.SalesByEmployee{
			AllTime: []domain.EmployeePeriodTotal{
				{Employee: "Alice", TotalSales: decimal.NewFromInt(300), TotalProfit: decimal.NewFromInt(100)},
			},
			Today:     []domain.EmployeePeriodTotal{},
			ThisWeek:  []domain.EmployeePeriodTotal{},
			ThisMonth: []domain.EmployeePeriodTotal{},
			LastWeek:  []domain.EmployeePeriodTotal{},
			LastMonth: []domain.EmployeePeriodTotal{},
		},
		SalesLogs: []domain.SaleLogEntry{
			{SaleID: "sale-1", Date: "03/07/2024", Time: "09:05:07", SoldBy: "Alice"},
		},
	}
	suite.mockReportingService.On("SalesReport", mock.Anything).Return(report, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/chart", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.SalesReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.SalesByEmployee.AllTime, 1)
	suite.Equal("Alice", body.SalesByEmployee.AllTime[0].Employee)
	suite.Require().Len(body.SalesLogs, 1)
	suite.Equal("03/07/2024", body.SalesLogs[0].Date)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestLeaderboard_ForwardsParsedDates() {
	userID := uuid.NewString()
	suite.approvedUser()

	board := &domain.RepairLeaderboard{
		Customers:         []domain.NameCount{{Name: "Niko", Count: 3}},
		Employees:         []domain.NameCount{{Name: "Alice", Count: 3}},
		QuotaCompleted:    []domain.NameCount{},
		QuotaNotCompleted: []domain.NameCount{{Name: "Alice", Count: 3}},
	}
	wantFrom := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	suite.mockReportingService.On("RepairLeaderboard", mock.Anything,
		mock.MatchedBy(func(from *time.Time) bool { return from != nil && from.Equal(wantFrom) }),
		mock.MatchedBy(func(to *time.Time) bool { return to != nil && to.Equal(wantTo) }),
	).Return(board, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/leaderboard?fromDate=2024-04-01&toDate=2024-04-30", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.LeaderboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-04-01", body.FromDate)
	suite.Equal("2024-04-30", body.ToDate)
	suite.Require().Len(body.Employees, 1)
	suite.Equal(3, body.Employees[0].Count)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestLeaderboard_InvalidDateRejected() {
	userID := uuid.NewString()
	suite.approvedUser()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/leaderboard?fromDate=01-04-2024", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "RepairLeaderboard", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestSalesChart_MissingTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/chart", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestSalesChart_UnapprovedForbidden() {
	userID := uuid.NewString()
	suite.mockUserReader.GetUserByIDFn = func(ctx context.Context, id string) (*domain.User, error) {
		return &domain.User{UserID: id, Role: domain.RolePending, IsApproved: false}, nil
	}

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/chart", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "SalesReport", mock.Anything)
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
