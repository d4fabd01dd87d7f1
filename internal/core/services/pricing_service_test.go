package services_test

import (
	"context"
	"testing"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ItemReader ---
type MockItemReader struct {
	mock.Mock
	FindItemByIDFn func(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	FindItemsFn    func(ctx context.Context) ([]domain.CatalogItem, error)
}

func (m *MockItemReader) FindItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	if m.FindItemByIDFn != nil {
		return m.FindItemByIDFn(ctx, itemID)
	}
	args := m.Called(ctx, itemID)
	var item *domain.CatalogItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.CatalogItem)
	}
	return item, args.Error(1)
}

func (m *MockItemReader) FindItems(ctx context.Context) ([]domain.CatalogItem, error) {
	if m.FindItemsFn != nil {
		return m.FindItemsFn(ctx)
	}
	args := m.Called(ctx)
	var items []domain.CatalogItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.CatalogItem)
	}
	return items, args.Error(1)
}

// --- Test Suite ---
type PricingServiceTestSuite struct {
	suite.Suite
	mockItemRepo *MockItemReader
	service      portssvc.PricingSvc
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemReader)
	suite.service = services.NewPricingService(suite.mockItemRepo)
}

func catalogEntry(id string, name domain.ItemName, category domain.VehicleCategory, level domain.DamageLevel, price, cost int64) domain.CatalogItem {
	return domain.CatalogItem{
		ItemID:      id,
		Name:        name,
		Category:    category,
		DamageLevel: level,
		Price:       decimal.NewFromInt(price),
		StockPrice:  decimal.NewFromInt(cost),
	}
}

// sedanCatalog covers every kind a Sedans repair can touch.
func sedanCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		catalogEntry("eng-min", domain.ItemEngine, "Sedans", domain.DamageMinor, 500, 200),
		catalogEntry("eng-hvy", domain.ItemEngine, "Sedans", domain.DamageHeavy, 900, 350),
		catalogEntry("body-min", domain.ItemBody, "Sedans", domain.DamageMinor, 400, 150),
		catalogEntry("door", domain.ItemDoor, "Sedans", "", 100, 40),
		catalogEntry("windows", domain.ItemWindows, "Sedans", "", 80, 30),
		catalogEntry("tyres", domain.ItemTyres, "Sedans", "", 120, 50),
		catalogEntry("oil", domain.ItemMotorOil, "", "", 50, 20),
		catalogEntry("kit", domain.ItemRepairKit, "", "", 250, 100),
	}
}

func (suite *PricingServiceTestSuite) TestPriceRepair_FullRepairNoDiscount() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		return sedanCatalog(), nil
	}

	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		EngineDamage:    domain.DamageHeavy,
		BodyDamage:      domain.DamageMinor,
		NumberOfDoors:   2,
		NumberOfWindows: 3,
		NumberOfTyres:   4,
		MotorOil:        true,
		RepairKits:      2,
	})

	suite.Require().NoError(err)
	suite.Require().Len(quote.Lines, 7)
	// 900 + 400 + 2*100 + 3*80 + 4*120 + 50 + 2*250 = 2770
	suite.True(quote.TotalBill.Equal(decimal.NewFromInt(2770)), "bill was %s", quote.TotalBill)
	// profits: 550 + 250 + 2*60 + 3*50 + 4*70 + 30 + 2*150 = 1680
	suite.True(quote.TotalProfit.Equal(decimal.NewFromInt(1680)), "profit was %s", quote.TotalProfit)
}

func (suite *PricingServiceTestSuite) TestPriceRepair_SingleEngineRepair() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		return sedanCatalog(), nil
	}

	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		EngineDamage:    domain.DamageMinor,
	})

	suite.Require().NoError(err)
	suite.Require().Len(quote.Lines, 1)
	suite.True(quote.Lines[0].UnitPrice.Equal(decimal.NewFromInt(500)))
	suite.True(quote.TotalBill.Equal(decimal.NewFromInt(500)))
	suite.True(quote.TotalProfit.Equal(decimal.NewFromInt(300)))
}

func (suite *PricingServiceTestSuite) TestPriceRepair_DamageNoneProducesNoLine() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		return sedanCatalog(), nil
	}

	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		EngineDamage:    domain.DamageNone,
		BodyDamage:      domain.DamageNone,
		NumberOfDoors:   1,
	})

	suite.Require().NoError(err)
	suite.Require().Len(quote.Lines, 1)
	suite.Equal(string(domain.ItemDoor), quote.Lines[0].Name)
}

func (suite *PricingServiceTestSuite) TestPriceRepair_DiscountReducesPriceAndProfit() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		return sedanCatalog(), nil
	}

	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		EngineDamage:    domain.DamageMinor,
		DiscountPercent: decimal.NewFromInt(10),
	})

	suite.Require().NoError(err)
	suite.Require().Len(quote.Lines, 1)
	line := quote.Lines[0]
	// 500 * 0.9 = 450; profit 450 - 200 = 250
	suite.True(line.UnitPrice.Equal(decimal.NewFromInt(450)), "unit price was %s", line.UnitPrice)
	suite.True(quote.TotalBill.Equal(decimal.NewFromInt(450)))
	suite.True(quote.TotalProfit.Equal(decimal.NewFromInt(250)))
	// cost snapshot is never discounted
	suite.True(line.UnitCost.Equal(decimal.NewFromInt(200)))
}

func (suite *PricingServiceTestSuite) TestPriceRepair_FullDiscountGoesNegativeProfit() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		return sedanCatalog(), nil
	}

	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		EngineDamage:    domain.DamageMinor,
		DiscountPercent: decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	suite.True(quote.TotalBill.IsZero())
	// giving the part away still costs its stock price
	suite.True(quote.TotalProfit.Equal(decimal.NewFromInt(-200)), "profit was %s", quote.TotalProfit)
}

func (suite *PricingServiceTestSuite) TestPriceRepair_ConsumableIgnoresCategory() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		// catalog only has Sedans parts plus the consumables
		return sedanCatalog(), nil
	}

	// A Super repair finds no Super parts, but consumables still resolve.
	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Super",
		MotorOil:        true,
		RepairKits:      1,
	})

	suite.Require().NoError(err)
	suite.Require().Len(quote.Lines, 2)
	suite.True(quote.TotalBill.Equal(decimal.NewFromInt(300)))
}

func (suite *PricingServiceTestSuite) TestPriceRepair_LookupMissSkipsLine() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		return sedanCatalog(), nil
	}

	// Severe engine damage has no Sedans entry; the door still prices.
	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		EngineDamage:    domain.DamageSevere,
		NumberOfDoors:   1,
	})

	suite.Require().NoError(err)
	suite.Require().Len(quote.Lines, 1)
	suite.Equal(string(domain.ItemDoor), quote.Lines[0].Name)
	suite.True(quote.TotalBill.Equal(decimal.NewFromInt(100)))
}

func (suite *PricingServiceTestSuite) TestPriceRepair_EmptyRepairYieldsEmptyQuote() {
	ctx := context.Background()
	suite.mockItemRepo.FindItemsFn = func(ctx context.Context) ([]domain.CatalogItem, error) {
		return sedanCatalog(), nil
	}

	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{VehicleCategory: "Sedans"})

	suite.Require().NoError(err)
	suite.Empty(quote.Lines)
	suite.True(quote.TotalBill.IsZero())
	suite.True(quote.TotalProfit.IsZero())
}

func (suite *PricingServiceTestSuite) TestPriceRepair_InvalidCategory() {
	ctx := context.Background()

	quote, err := suite.service.PriceRepair(ctx, domain.RepairDetails{VehicleCategory: "Boats"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(quote)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "FindItems", mock.Anything)
}

func (suite *PricingServiceTestSuite) TestPriceRepair_InvalidDamageLevel() {
	ctx := context.Background()

	_, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		EngineDamage:    "Catastrophic",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PricingServiceTestSuite) TestPriceRepair_DiscountOutOfRange() {
	ctx := context.Background()

	for _, d := range []int64{-1, 101} {
		_, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
			VehicleCategory: "Sedans",
			DiscountPercent: decimal.NewFromInt(d),
		})
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *PricingServiceTestSuite) TestPriceRepair_NegativeCounts() {
	ctx := context.Background()

	_, err := suite.service.PriceRepair(ctx, domain.RepairDetails{
		VehicleCategory: "Sedans",
		NumberOfDoors:   -1,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
