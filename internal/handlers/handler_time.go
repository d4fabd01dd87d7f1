package handlers

import (
	"net/http"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"

	"github.com/gin-gonic/gin"
)

// timeclockHandler serves the duty-time report.
type timeclockHandler struct {
	timeclockService portssvc.TimeclockSvc
}

func newTimeclockHandler(ts portssvc.TimeclockSvc) *timeclockHandler {
	return &timeclockHandler{
		timeclockService: ts,
	}
}

// registerTimeclockRoutes registers the duty-time route.
func registerTimeclockRoutes(rg *gin.RouterGroup, timeclockService portssvc.TimeclockSvc, approved gin.HandlerFunc) {
	h := newTimeclockHandler(timeclockService)

	rg.GET("/time", approved, h.listClockedTimes)
}

// listClockedTimes godoc
// @Summary Duty-time report
// @Description Accumulated on-duty time per staff member, from the shared timeclock store.
// @Tags timeclock
// @Produce json
// @Success 200 {array} dto.ClockedTimeResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /time [get]
func (h *timeclockHandler) listClockedTimes(c *gin.Context) {
	records, err := h.timeclockService.ListClockedTimes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClockedTimeResponses(records))
}
