package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type pricingService struct {
	BaseService
	itemRepo portsrepo.ItemReader
}

// NewPricingService creates the billing calculator.
func NewPricingService(itemRepo portsrepo.ItemReader) portssvc.PricingSvc {
	return &pricingService{itemRepo: itemRepo}
}

var _ portssvc.PricingSvc = (*pricingService)(nil)

// catalogIndex resolves a candidate line to its catalog entry. Damage-rated
// kinds match on (name, category, damage level), counted parts on
// (name, category), consumables on name alone.
type catalogIndex struct {
	items map[string]domain.CatalogItem
}

func buildCatalogIndex(items []domain.CatalogItem) *catalogIndex {
	idx := &catalogIndex{items: make(map[string]domain.CatalogItem, len(items))}
	for _, item := range items {
		idx.items[catalogKey(item.Name, item.Category, item.DamageLevel)] = item
	}
	return idx
}

func catalogKey(name domain.ItemName, category domain.VehicleCategory, level domain.DamageLevel) string {
	switch {
	case name.IsConsumable():
		return string(name)
	case name.IsDamageRated():
		return fmt.Sprintf("%s|%s|%s", name, category, level)
	default:
		return fmt.Sprintf("%s|%s", name, category)
	}
}

func (idx *catalogIndex) lookup(name domain.ItemName, category domain.VehicleCategory, level domain.DamageLevel) (domain.CatalogItem, bool) {
	item, ok := idx.items[catalogKey(name, category, level)]
	return item, ok
}

// candidateLine is a repair component before catalog resolution.
type candidateLine struct {
	name     domain.ItemName
	level    domain.DamageLevel
	quantity int
}

// candidateLines expands a repair description into the parts it implies.
// A damage level of None means the component is not being repaired.
func candidateLines(repair domain.RepairDetails) []candidateLine {
	var lines []candidateLine
	if repair.EngineDamage != "" && repair.EngineDamage != domain.DamageNone {
		lines = append(lines, candidateLine{name: domain.ItemEngine, level: repair.EngineDamage, quantity: 1})
	}
	if repair.BodyDamage != "" && repair.BodyDamage != domain.DamageNone {
		lines = append(lines, candidateLine{name: domain.ItemBody, level: repair.BodyDamage, quantity: 1})
	}
	if repair.NumberOfDoors > 0 {
		lines = append(lines, candidateLine{name: domain.ItemDoor, quantity: repair.NumberOfDoors})
	}
	if repair.NumberOfWindows > 0 {
		lines = append(lines, candidateLine{name: domain.ItemWindows, quantity: repair.NumberOfWindows})
	}
	if repair.NumberOfTyres > 0 {
		lines = append(lines, candidateLine{name: domain.ItemTyres, quantity: repair.NumberOfTyres})
	}
	if repair.MotorOil {
		lines = append(lines, candidateLine{name: domain.ItemMotorOil, quantity: 1})
	}
	if repair.RepairKits > 0 {
		lines = append(lines, candidateLine{name: domain.ItemRepairKit, quantity: repair.RepairKits})
	}
	return lines
}

func validateRepair(repair domain.RepairDetails) error {
	if !domain.IsValidVehicleCategory(repair.VehicleCategory) {
		return fmt.Errorf("%w: unknown vehicle category %q", apperrors.ErrValidation, repair.VehicleCategory)
	}
	if repair.EngineDamage != "" && !domain.IsValidDamageLevel(repair.EngineDamage) {
		return fmt.Errorf("%w: unknown engine damage level %q", apperrors.ErrValidation, repair.EngineDamage)
	}
	if repair.BodyDamage != "" && !domain.IsValidDamageLevel(repair.BodyDamage) {
		return fmt.Errorf("%w: unknown body damage level %q", apperrors.ErrValidation, repair.BodyDamage)
	}
	if repair.NumberOfDoors < 0 || repair.NumberOfWindows < 0 || repair.NumberOfTyres < 0 || repair.RepairKits < 0 {
		return fmt.Errorf("%w: part counts must be non-negative", apperrors.ErrValidation)
	}
	if repair.DiscountPercent.IsNegative() || repair.DiscountPercent.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: discount must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

// PriceRepair expands the repair into candidate lines, resolves each against
// the catalog and applies the discount to the unit price before profit is
// computed. A lookup miss drops the line rather than failing the quote.
func (s *pricingService) PriceRepair(ctx context.Context, repair domain.RepairDetails) (*domain.RepairQuote, error) {
	if err := validateRepair(repair); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load catalog for pricing")
		return nil, fmt.Errorf("failed to load catalog for pricing: %w", err)
	}
	idx := buildCatalogIndex(items)

	// discount factor (1 - d/100) applied per unit
	factor := decimal.NewFromInt(1).Sub(repair.DiscountPercent.Div(oneHundred))

	quote := &domain.RepairQuote{
		TotalBill:   decimal.Zero,
		TotalProfit: decimal.Zero,
	}
	for _, cand := range candidateLines(repair) {
		item, ok := idx.lookup(cand.name, repair.VehicleCategory, cand.level)
		if !ok {
			s.LogWarn(ctx, "no catalog entry for repair component, skipping",
				slog.String("name", string(cand.name)),
				slog.String("category", string(repair.VehicleCategory)),
				slog.String("damage_level", string(cand.level)))
			continue
		}

		qty := decimal.NewFromInt(int64(cand.quantity))
		unitPrice := item.Price.Mul(factor)
		totalPrice := unitPrice.Mul(qty)
		totalProfit := unitPrice.Sub(item.StockPrice).Mul(qty)

		quote.Lines = append(quote.Lines, domain.SaleLineItem{
			ItemID:      item.ItemID,
			Name:        string(item.Name),
			Category:    item.Category,
			DamageLevel: item.DamageLevel,
			Quantity:    cand.quantity,
			UnitPrice:   unitPrice,
			UnitCost:    item.StockPrice,
			TotalPrice:  totalPrice,
			TotalProfit: totalProfit,
		})
		quote.TotalBill = quote.TotalBill.Add(totalPrice)
		quote.TotalProfit = quote.TotalProfit.Add(totalProfit)
	}

	return quote, nil
}
