package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Item         ItemSvcFacade
	Sale         SaleSvcFacade
	Pricing      PricingSvc
	Reporting    ReportingService
	Timeclock    TimeclockSvc
	Vehicles     VehicleCatalogSvc
	TokenService TokenSvcFacade
	DiscordOAuth DiscordOAuthSvcFacade
	Notifier     Notifier
}
