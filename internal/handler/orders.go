package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raghav2811/VendorConnect/internal/apierror"
	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/middleware"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/service"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// Create godoc
// @Summary Place an order against an approved vendor
// @Tags orders
// @Accept json
// @Produce json
// @Param body body dto.CreateOrderRequest true "Order lines"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	buyerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid token subject"))
		return
	}

	resp, err := h.svc.PlaceOrder(c.Request.Context(), buyerID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMine returns the authenticated buyer's order history, newest first.
func (h *OrdersHandler) ListMine(c *gin.Context) {
	claims := middleware.GetClaims(c)
	buyerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid token subject"))
		return
	}

	orders, err := h.svc.ListBuyerOrders(c.Request.Context(), buyerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list orders"))
		return
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Data: orders, Total: len(orders)})
}

// ListVendor returns incoming orders for the authenticated vendor account.
func (h *OrdersHandler) ListVendor(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims.VendorID == nil {
		c.JSON(http.StatusForbidden, apierror.New("Account is not linked to a vendor"))
		return
	}
	vendorID, err := uuid.Parse(*claims.VendorID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("Account is not linked to a vendor"))
		return
	}

	orders, err := h.svc.ListVendorOrders(c.Request.Context(), vendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list orders"))
		return
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Data: orders, Total: len(orders)})
}

// UpdateStatus godoc
// @Summary Update an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body dto.UpdateOrderStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Router /v1/orders/{id}/status [put]
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid order id"))
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	// Vendor and staff accounts can only touch their own orders.
	var scope *uuid.UUID
	if middleware.GetClaims(c).Role != model.RoleAdmin {
		vendorID, ok := ownVendorID(c)
		if !ok {
			return
		}
		scope = &vendorID
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), id, scope, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
