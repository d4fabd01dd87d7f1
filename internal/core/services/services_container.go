package services

import (
	portsrepo "github.com/mprs-garage/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Item = NewItemService(repos.ItemRepo)
	container.Pricing = NewPricingService(repos.ItemRepo)
	container.Notifier = NewDiscordWebhookNotifier(cfg.DiscordWebhookURL)

	// Sale recording depends on pricing, the seller lookup and stock writes.
	container.Sale = NewSaleService(
		repos.SaleRepo,
		repos.ItemRepo,
		container.User,
		container.Pricing,
		WithSaleNotifier(container.Notifier),
	)

	container.Reporting = NewReportingService(repos.SaleRepo)
	container.Timeclock = NewTimeclockService(repos.ClockedTimeRepo, cfg.DepartmentID)
	container.Vehicles = NewVehicleCatalogService(cfg.VehicleAPIURL, cfg.CharacterAPIURL, cfg.CacheTTL)

	container.TokenService = NewTokenService(cfg, container.User)
	container.DiscordOAuth = NewDiscordOAuthService(cfg)

	return container
}
