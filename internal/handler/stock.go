package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raghav2811/VendorConnect/internal/apierror"
	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/middleware"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/service"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// vendorScope resolves the tenant filter for stock reads. Vendor accounts
// are always scoped to their own records; admins see everything unless they
// narrow with ?vendor_id=.
func vendorScope(c *gin.Context) (*uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims.Role == model.RoleAdmin {
		if q := c.Query("vendor_id"); q != "" {
			id, err := uuid.Parse(q)
			if err != nil {
				c.JSON(http.StatusBadRequest, apierror.New("Invalid vendor_id filter"))
				return nil, false
			}
			return &id, true
		}
		return nil, true
	}
	if claims.VendorID == nil {
		c.JSON(http.StatusForbidden, apierror.New("Account is not linked to a vendor"))
		return nil, false
	}
	id, err := uuid.Parse(*claims.VendorID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("Account is not linked to a vendor"))
		return nil, false
	}
	return &id, true
}

// ownVendorID resolves the caller's vendor for stock writes. Writes are
// never cross-tenant, so admins without a vendor link are rejected.
func ownVendorID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims.VendorID == nil {
		c.JSON(http.StatusForbidden, apierror.New("Account is not linked to a vendor"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(*claims.VendorID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("Account is not linked to a vendor"))
		return uuid.Nil, false
	}
	return id, true
}

// CreateItem godoc
// @Summary Register a stock item for the authenticated vendor
// @Tags stock
// @Accept json
// @Produce json
// @Param body body dto.CreateStockItemRequest true "Item details"
// @Success 201 {object} dto.StockItemResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/stock [post]
func (h *StockHandler) CreateItem(c *gin.Context) {
	vendorID, ok := ownVendorID(c)
	if !ok {
		return
	}

	var req dto.CreateStockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.CreateItem(c.Request.Context(), vendorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StockHandler) ListItems(c *gin.Context) {
	scope, ok := vendorScope(c)
	if !ok {
		return
	}
	items, err := h.svc.ListItems(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list stock items"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// RecordTransaction godoc
// @Summary Record an inventory movement (in / out / adjustment)
// @Tags stock
// @Accept json
// @Produce json
// @Param body body dto.CreateStockTransactionRequest true "Movement details"
// @Success 201 {object} dto.StockTransactionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/stock/transactions [post]
func (h *StockHandler) RecordTransaction(c *gin.Context) {
	vendorID, ok := ownVendorID(c)
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid token subject"))
		return
	}

	var req dto.CreateStockTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.RecordTransaction(c.Request.Context(), vendorID, userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StockHandler) ListTransactions(c *gin.Context) {
	scope, ok := vendorScope(c)
	if !ok {
		return
	}

	limit := 0
	if q := c.Query("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}

	txs, err := h.svc.ListTransactions(c.Request.Context(), scope, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list transactions"))
		return
	}
	c.JSON(http.StatusOK, txs)
}

// Alerts lists items at or below their reorder level, with the deficit
// needed to climb back above it.
func (h *StockHandler) Alerts(c *gin.Context) {
	scope, ok := vendorScope(c)
	if !ok {
		return
	}
	alerts, err := h.svc.LowStockAlerts(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list stock alerts"))
		return
	}
	c.JSON(http.StatusOK, alerts)
}
