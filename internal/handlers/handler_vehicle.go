package handlers

import (
	"net/http"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"

	"github.com/gin-gonic/gin"
)

// vehicleHandler proxies the external vehicle and character registries.
type vehicleHandler struct {
	catalogService portssvc.VehicleCatalogSvc
}

func newVehicleHandler(vs portssvc.VehicleCatalogSvc) *vehicleHandler {
	return &vehicleHandler{
		catalogService: vs,
	}
}

// registerVehicleRoutes registers the registry proxy routes.
func registerVehicleRoutes(rg *gin.RouterGroup, catalogService portssvc.VehicleCatalogSvc, approved gin.HandlerFunc) {
	h := newVehicleHandler(catalogService)

	rg.GET("/vehicles", approved, h.searchVehicles)
	rg.GET("/characters", approved, h.listCharacters)
}

// searchVehicles godoc
// @Summary Search the vehicle registry
// @Description Case-insensitive name search; an empty query returns the full registry. Results are served from a short-lived cache.
// @Tags vehicles
// @Produce json
// @Param search query string false "Name fragment"
// @Success 200 {array} domain.VehicleInfo
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [get]
func (h *vehicleHandler) searchVehicles(c *gin.Context) {
	vehicles, err := h.catalogService.SearchVehicles(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Vehicle registry unavailable"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// listCharacters godoc
// @Summary List the character registry
// @Tags vehicles
// @Produce json
// @Success 200 {array} domain.CharacterInfo
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /characters [get]
func (h *vehicleHandler) listCharacters(c *gin.Context) {
	characters, err := h.catalogService.ListCharacters(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Character registry unavailable"})
		return
	}
	c.JSON(http.StatusOK, characters)
}
