package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/google/uuid"
)

type itemService struct {
	BaseService
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates the parts catalog service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to get catalog item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	items, err := s.itemRepo.FindItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list catalog items")
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	return items, nil
}

func (s *itemService) CreateItem(ctx context.Context, creatorUserID string, req dto.CreateItemRequest) (*domain.CatalogItem, error) {
	now := time.Now().UTC()
	item := domain.CatalogItem{
		ItemID:      uuid.NewString(),
		Name:        domain.ItemName(req.Name),
		Price:       req.Price,
		StockPrice:  req.StockPrice,
		Category:    domain.VehicleCategory(req.Category),
		DamageLevel: domain.DamageLevel(req.DamageLevel),
		Stock:       req.Stock,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "failed to create catalog item", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create catalog item: %w", err)
	}
	s.LogInfo(ctx, "catalog item created",
		slog.String("item_id", item.ItemID),
		slog.String("name", string(item.Name)))
	return &item, nil
}

// UpdateItem changes prices, discriminators and stock. The item's name is
// immutable; price changes affect only future quotes, stored sale lines keep
// their snapshot prices.
func (s *itemService) UpdateItem(ctx context.Context, updaterUserID string, itemID string, req dto.UpdateItemRequest) (*domain.CatalogItem, error) {
	item, err := s.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Price = req.Price
	item.StockPrice = req.StockPrice
	item.Category = domain.VehicleCategory(req.Category)
	item.DamageLevel = domain.DamageLevel(req.DamageLevel)
	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = updaterUserID
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "failed to update catalog item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update catalog item: %w", err)
	}
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to delete catalog item", slog.String("item_id", itemID))
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}
	s.LogInfo(ctx, "catalog item deleted", slog.String("item_id", itemID))
	return nil
}
