package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/mprs-garage/repair_shop_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// notifyHandler forwards staff messages to the shop's Discord webhook.
type notifyHandler struct {
	notifier portssvc.Notifier
}

func newNotifyHandler(n portssvc.Notifier) *notifyHandler {
	return &notifyHandler{
		notifier: n,
	}
}

// registerNotifyRoutes registers the webhook relay route.
func registerNotifyRoutes(rg *gin.RouterGroup, notifier portssvc.Notifier, approved gin.HandlerFunc) {
	h := newNotifyHandler(notifier)

	rg.POST("/notify", approved, h.notify)
}

// notify godoc
// @Summary Post a message to the shop webhook
// @Tags notify
// @Accept json
// @Param message body dto.NotifyRequest true "Message content"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /notify [post]
func (h *notifyHandler) notify(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.notifier.Notify(c.Request.Context(), req.Content); err != nil {
		logger.Error("Failed to relay webhook message", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to deliver notification"})
		return
	}
	c.Status(http.StatusNoContent)
}
