package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/mprs-garage/repair_shop_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// pricingHandler serves price previews without recording anything.
type pricingHandler struct {
	pricingService portssvc.PricingSvc
}

func newPricingHandler(ps portssvc.PricingSvc) *pricingHandler {
	return &pricingHandler{
		pricingService: ps,
	}
}

// registerPricingRoutes registers the billing preview route.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvc, approved gin.HandlerFunc) {
	h := newPricingHandler(pricingService)

	billing := rg.Group("/billing", approved)
	{
		billing.POST("/quote", h.quote)
	}
}

// quote godoc
// @Summary Price a repair
// @Description Prices a structured repair description against the current catalog without persisting a sale.
// @Tags billing
// @Accept json
// @Produce json
// @Param repair body dto.RepairPayload true "Repair description"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing/quote [post]
func (h *pricingHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.RepairPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind quote request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.pricingService.PriceRepair(c.Request.Context(), req.ToRepairDetails())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}
