package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/mprs-garage/repair_shop_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests for transaction records.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{
		saleService: ss,
	}
}

// registerSaleRoutes registers the sale recording routes. The delete gate
// (manager and above) is enforced in the service against the acting user.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, approved gin.HandlerFunc) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales", approved)
	{
		sales.POST("", h.createSale)
		sales.GET("/:id", h.getSale)
		sales.DELETE("/:id", h.deleteSale)
	}
}

// createSale godoc
// @Summary Record a completed repair
// @Description Prices the repair against the catalog, stores the sale and decrements stock.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Customer and repair details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	sellerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), sellerUserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Permanently removes a sale record. Manager and above only.
// @Tags sales
// @Param id path string true "Sale ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), actorUserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
