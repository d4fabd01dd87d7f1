package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"

	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard aggregations.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers the aggregation routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, approved gin.HandlerFunc) {
	h := newReportingHandler(reportingService)

	sales := rg.Group("/sales", approved)
	{
		sales.GET("/chart", h.salesChart)
		sales.GET("/leaderboard", h.leaderboard)
	}
}

// salesChart godoc
// @Summary Sales aggregation report
// @Description Per-employee totals for the six calendar windows plus the display-ready sales log.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.SalesReportResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/chart [get]
func (h *reportingHandler) salesChart(c *gin.Context) {
	report, err := h.reportingService.SalesReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesReportResponse(report))
}

// leaderboard godoc
// @Summary Repair-count leaderboard
// @Description Ranked repair counts per customer and per employee, with the quota partition. The date filter applies only when both bounds are given.
// @Tags reporting
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param toDate query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/leaderboard [get]
func (h *reportingHandler) leaderboard(c *gin.Context) {
	var from, to *time.Time
	if raw := c.Query("fromDate"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fromDate, expected YYYY-MM-DD"})
			return
		}
		from = &parsed
	}
	if raw := c.Query("toDate"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid toDate, expected YYYY-MM-DD"})
			return
		}
		to = &parsed
	}

	board, err := h.reportingService.RepairLeaderboard(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaderboardResponse(board, from, to))
}
