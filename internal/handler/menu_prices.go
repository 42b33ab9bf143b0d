package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/raghav2811/VendorConnect/internal/apierror"
	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/repository"
)

const priceCacheTTL = 4 * time.Hour

// MenuPricesHandler serves the public price check endpoint.
// No authentication required — no side effects whatsoever.
type MenuPricesHandler struct {
	menu repository.MenuRepository
	rdb  *redis.Client
}

func NewMenuPricesHandler(menu repository.MenuRepository, rdb *redis.Client) *MenuPricesHandler {
	return &MenuPricesHandler{menu: menu, rdb: rdb}
}

// GetPrice godoc
// @Summary Public menu item price check (no authentication)
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} dto.MenuPriceResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/menu/{id}/price [get]
func (h *MenuPricesHandler) GetPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid menu item id"))
		return
	}

	ctx := c.Request.Context()
	cacheKey := "price:" + id.String()

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.MenuPriceResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	item, err := h.menu.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Menu item not found"))
		return
	}

	resp := dto.MenuPriceResponse{
		Name:        item.Name,
		Price:       item.Price,
		Category:    item.Category,
		IsAvailable: item.IsAvailable,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
