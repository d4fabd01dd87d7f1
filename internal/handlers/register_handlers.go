package handlers

import (
	"github.com/mprs-garage/repair_shop_app/cmd/docs"
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/middleware"
	"github.com/mprs-garage/repair_shop_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	registerHomeRoutes(r)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Most of the dashboard is gated to approved staff; user routes stay
	// reachable for pending accounts so they can see their own status and
	// complete their profile.
	approved := middleware.RequireApproved(services.User)
	manager := middleware.RequireRole(services.User, domain.RoleManager)

	registerUserRoutes(v1, services.User)
	registerItemRoutes(v1, services.Item, approved, manager)
	registerSaleRoutes(v1, services.Sale, approved)
	registerPricingRoutes(v1, services.Pricing, approved)
	RegisterReportingRoutes(v1, services.Reporting, approved)
	registerVehicleRoutes(v1, services.Vehicles, approved)
	registerTimeclockRoutes(v1, services.Timeclock, approved)
	registerNotifyRoutes(v1, services.Notifier, approved)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
