package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raghav2811/VendorConnect/internal/apierror"
	"github.com/raghav2811/VendorConnect/internal/infra"
	"github.com/raghav2811/VendorConnect/internal/service"
	"github.com/raghav2811/VendorConnect/internal/worker"
)

// ReportsHandler serves the admin-facing platform reports.
type ReportsHandler struct {
	svc         service.ReportService
	dispatcher  *worker.Dispatcher
	storagePath string
}

func NewReportsHandler(svc service.ReportService, dispatcher *worker.Dispatcher, storagePath string) *ReportsHandler {
	return &ReportsHandler{svc: svc, dispatcher: dispatcher, storagePath: storagePath}
}

// Overview godoc
// @Summary Platform-wide operations report
// @Tags reports
// @Produce json
// @Success 200 {object} dto.GlobalReportResponse
// @Router /v1/reports/overview [get]
func (h *ReportsHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Overview(c.Request.Context()))
}

// Dashboard returns the landing-page counters.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.DashboardStats(c.Request.Context()))
}

// MonthlyTransactions returns per-month inventory movement totals for the
// trailing year, most recent month first.
func (h *ReportsHandler) MonthlyTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.MonthlyTransactions(c.Request.Context()))
}

// ExportPDF godoc
// @Summary Download the operations report as PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 500 {object} apierror.APIError
// @Router /v1/reports/export/pdf [get]
func (h *ReportsHandler) ExportPDF(c *gin.Context) {
	report := h.svc.Overview(c.Request.Context())

	path, err := infra.GenerateReportPDF(report, h.storagePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to generate report PDF"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="operations_report.pdf"`)
	c.File(path)
}

type emailReportRequest struct {
	Recipient string `json:"recipient" validate:"required,email"`
}

// EmailReport godoc
// @Summary Queue the operations report for email delivery
// @Tags reports
// @Accept json
// @Produce json
// @Param body body emailReportRequest true "Recipient"
// @Success 202 {object} map[string]string
// @Failure 400 {object} apierror.APIError
// @Router /v1/reports/email [post]
func (h *ReportsHandler) EmailReport(c *gin.Context) {
	var req emailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}

	payload := worker.ReportEmailPayload{Recipient: req.Recipient}
	if err := h.dispatcher.EnqueueReportEmail(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to queue report email"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "recipient": req.Recipient})
}
