package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueStockAlert.
// Emails the owning vendor when an item crosses its reorder level.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raghav2811/VendorConnect/internal/infra"
	"github.com/raghav2811/VendorConnect/internal/repository"
)

// StockAlertWorker notifies vendors about items that need restocking.
type StockAlertWorker struct {
	vendors repository.VendorRepository
	mailer  *infra.Mailer
}

func NewStockAlertWorker(vendors repository.VendorRepository, mailer *infra.Mailer) *StockAlertWorker {
	return &StockAlertWorker{vendors: vendors, mailer: mailer}
}

// Handle looks up the vendor's contact email and sends the alert.
// A missing vendor is dropped (not retried): the record was deleted after
// the job was enqueued and retrying cannot succeed.
func (w *StockAlertWorker) Handle(ctx context.Context, raw json.RawMessage) error {
	var payload StockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return nil
	}

	vendorID, err := uuid.Parse(payload.VendorID)
	if err != nil {
		log.Error().Str("vendor_id", payload.VendorID).Msg("alert_worker: invalid vendor id")
		return nil
	}

	vendor, err := w.vendors.FindByID(ctx, vendorID)
	if err != nil {
		log.Warn().Str("vendor_id", payload.VendorID).Msg("alert_worker: vendor not found — dropping alert")
		return nil
	}
	if vendor.Email == "" {
		log.Warn().Str("vendor_id", payload.VendorID).Msg("alert_worker: vendor has no email — skipping")
		return nil
	}

	subject := fmt.Sprintf("Low stock alert: %s", payload.ItemName)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your stock item %q is running low.\n\n"+
			"  Current stock:  %d\n"+
			"  Reorder level:  %d\n\n"+
			"Consider restocking soon to avoid running out.\n\n"+
			"— VendorConnect",
		vendor.ContactPerson, payload.ItemName, payload.CurrentStock, payload.ReorderLevel,
	)

	if err := w.mailer.SendAlert(vendor.Email, subject, body); err != nil {
		return fmt.Errorf("alert_worker: send email: %w", err)
	}

	log.Info().
		Str("vendor_id", payload.VendorID).
		Str("item", payload.ItemName).
		Msg("alert_worker: low stock alert sent")
	return nil
}
