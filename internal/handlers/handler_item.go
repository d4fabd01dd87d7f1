package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
	"github.com/mprs-garage/repair_shop_app/internal/dto"
	"github.com/mprs-garage/repair_shop_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests for the parts catalog.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{
		itemService: is,
	}
}

// registerItemRoutes registers all catalog routes. Reads are open to
// approved staff; writes require manager and above.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade, approved, manager gin.HandlerFunc) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.GET("", approved, h.listItems)
		items.GET("/:id", approved, h.getItem)
		items.POST("", manager, h.createItem)
		items.PUT("/:id", manager, h.updateItem)
		items.DELETE("/:id", manager, h.deleteItem)
	}
}

// listItems godoc
// @Summary List catalog items
// @Description Returns the full parts catalog.
// @Tags items
// @Produce json
// @Success 200 {object} dto.ListItemsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListItemsResponse(items))
}

// getItem godoc
// @Summary Get a catalog item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	item, err := h.itemService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// createItem godoc
// @Summary Create a catalog item
// @Description Adds a part/service definition. Manager and above only.
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create item request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), creatorUserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update a catalog item
// @Description Changes prices and discriminators. Historical sale lines keep their snapshot prices.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateItemRequest true "Updated fields"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update item request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), updaterUserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a catalog item
// @Tags items
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
