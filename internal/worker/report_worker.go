package worker

// report_worker.go
// Processes report email jobs from QueueReportEmail.
// Renders the global analytics report to PDF and mails it to the recipient.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/infra"
)

// ReportSource produces the platform-wide report snapshot.
// Kept as a local interface so the worker does not depend on the service
// package, which itself depends on this package for the dispatcher.
type ReportSource interface {
	Overview(ctx context.Context) *dto.GlobalReportResponse
}

// ReportEmailWorker renders and emails the global operations report.
type ReportEmailWorker struct {
	reports     ReportSource
	mailer      *infra.Mailer
	storagePath string
}

func NewReportEmailWorker(reports ReportSource, mailer *infra.Mailer, storagePath string) *ReportEmailWorker {
	return &ReportEmailWorker{reports: reports, mailer: mailer, storagePath: storagePath}
}

// Handle builds a fresh report, renders the PDF, and sends it. Render and
// send failures are returned so the pool retries them.
func (w *ReportEmailWorker) Handle(ctx context.Context, raw json.RawMessage) error {
	var payload ReportEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return nil
	}
	if payload.Recipient == "" {
		log.Warn().Msg("report_worker: empty recipient — skipping")
		return nil
	}

	report := w.reports.Overview(ctx)

	pdfPath, err := infra.GenerateReportPDF(report, w.storagePath)
	if err != nil {
		return fmt.Errorf("report_worker: render PDF: %w", err)
	}

	subject := "VendorConnect operations report — " + time.Now().UTC().Format("Jan 2, 2006")
	body := "Attached is the latest platform operations report.\n\n— VendorConnect"

	if err := w.mailer.SendReport(payload.Recipient, subject, body, pdfPath); err != nil {
		return fmt.Errorf("report_worker: send email: %w", err)
	}

	log.Info().Str("to", payload.Recipient).Str("pdf", pdfPath).Msg("report_worker: report sent")
	return nil
}
