package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raghav2811/VendorConnect/internal/analytics"
	"github.com/raghav2811/VendorConnect/internal/apierror"
	"github.com/raghav2811/VendorConnect/internal/middleware"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/service"
)

type AnalyticsHandler struct{ svc service.ReportService }

func NewAnalyticsHandler(svc service.ReportService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// analyticsVendorID resolves which vendor the snapshot is for: vendor and
// staff accounts always get their own, only admins pick any via ?vendor_id=.
func analyticsVendorID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims.Role == model.RoleAdmin {
		if q := c.Query("vendor_id"); q != "" {
			id, err := uuid.Parse(q)
			if err != nil {
				c.JSON(http.StatusBadRequest, apierror.New("Invalid vendor_id"))
				return uuid.Nil, false
			}
			return id, true
		}
	}
	return ownVendorID(c)
}

// Snapshot godoc
// @Summary Complete analytics snapshot for one vendor
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.VendorAnalyticsResponse
// @Router /v1/analytics/vendor [get]
func (h *AnalyticsHandler) Snapshot(c *gin.Context) {
	vendorID, ok := analyticsVendorID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.VendorAnalytics(c.Request.Context(), vendorID))
}

// Trend returns the zero-filled revenue series. ?period=daily|weekly|monthly,
// default daily.
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	vendorID, ok := analyticsVendorID(c)
	if !ok {
		return
	}

	kind := analytics.PeriodKind(c.DefaultQuery("period", string(analytics.PeriodDaily)))
	switch kind {
	case analytics.PeriodDaily, analytics.PeriodWeekly, analytics.PeriodMonthly:
	default:
		c.JSON(http.StatusBadRequest, apierror.New("period must be daily, weekly or monthly"))
		return
	}

	c.JSON(http.StatusOK, h.svc.VendorTrend(c.Request.Context(), vendorID, kind))
}

func (h *AnalyticsHandler) TopItems(c *gin.Context) {
	vendorID, ok := analyticsVendorID(c)
	if !ok {
		return
	}

	limit := 10
	if q := c.Query("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, h.svc.VendorTopItems(c.Request.Context(), vendorID, limit))
}

func (h *AnalyticsHandler) PeakHours(c *gin.Context) {
	vendorID, ok := analyticsVendorID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.VendorPeakHours(c.Request.Context(), vendorID))
}

func (h *AnalyticsHandler) Insights(c *gin.Context) {
	vendorID, ok := analyticsVendorID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.VendorInsights(c.Request.Context(), vendorID))
}
