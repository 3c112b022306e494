package handlers

import (
	"net/http"

	"restaurant-menu-api/models"
	"restaurant-menu-api/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RestaurantParam is the path parameter carrying the restaurant id.
const RestaurantParam = "restaurantId"

// CreateMenuItemRequest carries no binding rules; the menu table's own
// constraints decide what is acceptable.
type CreateMenuItemRequest struct {
	ItemName    *string  `json:"item_name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
}

type MenuHandler struct {
	menus  repository.MenuRepository
	logger *zap.Logger
}

func NewMenuHandler(menus repository.MenuRepository, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{menus: menus, logger: logger}
}

// ListCategories returns the distinct categories of a restaurant's menu
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menus.ListCategories(c.Request.Context(), c.Param(RestaurantParam))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListItems returns every item on a restaurant's menu
func (h *MenuHandler) ListItems(c *gin.Context) {
	items, err := h.menus.ListItems(c.Request.Context(), c.Param(RestaurantParam))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddItem inserts a menu item and echoes the stored row
func (h *MenuHandler) AddItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	restaurantID := c.Param(RestaurantParam)
	item, err := h.menus.AddItem(c.Request.Context(), restaurantID, models.MenuItem{
		ItemName:    req.ItemName,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("menu item added",
		zap.String("restaurant_id", restaurantID),
		zap.Uint("item_id", item.ID),
	)
	c.JSON(http.StatusCreated, item)
}
