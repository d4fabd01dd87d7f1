package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/apperrors"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/google/uuid"
)

type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
	itemRepo portsrepo.ItemWriter
	userSvc  portssvc.UserReaderSvc
	pricing  portssvc.PricingSvc
	notifier portssvc.Notifier
}

// SaleServiceOption is a functional option for configuring the sale service
type SaleServiceOption func(*saleService)

// WithSaleNotifier attaches the webhook notifier fired after each sale.
func WithSaleNotifier(n portssvc.Notifier) SaleServiceOption {
	return func(s *saleService) {
		s.notifier = n
	}
}

// NewSaleService creates the transaction recording service.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	itemRepo portsrepo.ItemWriter,
	userSvc portssvc.UserReaderSvc,
	pricing portssvc.PricingSvc,
	options ...SaleServiceOption,
) portssvc.SaleSvcFacade {
	s := &saleService{
		saleRepo: saleRepo,
		itemRepo: itemRepo,
		userSvc:  userSvc,
		pricing:  pricing,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale prices the repair, stamps the record server-side and persists
// it with a snapshot of the seller's character name. Stock decrements and
// the webhook notification are best effort: their failure never unwinds a
// recorded sale.
func (s *saleService) CreateSale(ctx context.Context, sellerUserID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	seller, err := s.userSvc.GetUserByID(ctx, sellerUserID)
	if err != nil {
		return nil, err
	}

	repair := req.Repair.ToRepairDetails()
	quote, err := s.pricing.PriceRepair(ctx, repair)
	if err != nil {
		return nil, err
	}

	soldBy := seller.CharacterName
	if soldBy == "" {
		soldBy = seller.Name
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:    uuid.NewString(),
		Timestamp: now,
		Customer: domain.CustomerDetails{
			Name:        req.Customer.Name,
			CID:         req.Customer.CID,
			DiscordID:   req.Customer.DiscordID,
			VehicleName: req.Customer.VehicleName,
			// Plates are stored uppercased regardless of how they were typed.
			PlateNumber: strings.ToUpper(req.Customer.PlateNumber),
		},
		Repair:          repair,
		SoldBy:          soldBy,
		SoldByDiscordID: seller.DiscordID,
		LineItems:       quote.Lines,
		TotalBill:       quote.TotalBill,
		TotalProfit:     quote.TotalProfit,
		DiscountPercent: repair.DiscountPercent,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     sellerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: sellerUserID,
		},
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "failed to save sale", slog.String("seller_user_id", sellerUserID))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}
	s.LogInfo(ctx, "sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("sold_by", sale.SoldBy),
		slog.String("total_bill", sale.TotalBill.String()))

	for _, line := range sale.LineItems {
		if err := s.itemRepo.AdjustStock(ctx, line.ItemID, -int64(line.Quantity)); err != nil {
			s.LogError(ctx, err, "failed to decrement stock after sale",
				slog.String("sale_id", sale.SaleID),
				slog.String("item_id", line.ItemID))
		}
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("New repair logged by **%s** for **%s** (%s): $%s billed, $%s profit.",
			sale.SoldBy, sale.Customer.Name, sale.Customer.CID,
			sale.TotalBill.StringFixed(2), sale.TotalProfit.StringFixed(2))
		if err := s.notifier.Notify(ctx, msg); err != nil {
			s.LogWarn(ctx, "failed to send sale notification",
				slog.String("sale_id", sale.SaleID),
				slog.String("error", err.Error()))
		}
	}

	return &sale, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to get sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return sale, nil
}

// DeleteSale hard-deletes a sale record. Only manager and above may do this.
func (s *saleService) DeleteSale(ctx context.Context, actorUserID string, saleID string) error {
	actor, err := s.userSvc.GetUserByID(ctx, actorUserID)
	if err != nil {
		return err
	}
	if domain.RoleRank(actor.Role) < domain.RoleRank(domain.RoleManager) {
		return fmt.Errorf("%w: only managers may delete sales", apperrors.ErrForbidden)
	}

	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to delete sale", slog.String("sale_id", saleID))
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	s.LogInfo(ctx, "sale deleted",
		slog.String("sale_id", saleID),
		slog.String("actor_user_id", actorUserID))
	return nil
}
