package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const (
	QueueStockAlert  = "jobs:stock_alert"
	QueueReportEmail = "jobs:report_email"

	maxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// StockAlertPayload notifies a vendor that an item crossed its reorder level.
type StockAlertPayload struct {
	StockID      string `json:"stock_id"`
	VendorID     string `json:"vendor_id"`
	ItemName     string `json:"item_name"`
	CurrentStock int    `json:"current_stock"`
	ReorderLevel int    `json:"reorder_level"`
}

// ReportEmailPayload requests the global analytics report be rendered to PDF
// and mailed to the recipient.
type ReportEmailPayload struct {
	Recipient string `json:"recipient"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueStockAlert pushes a low-stock alert job to Redis.
func (d *Dispatcher) EnqueueStockAlert(ctx context.Context, payload StockAlertPayload) error {
	return d.enqueue(ctx, QueueStockAlert, "stock_alert", payload)
}

// EnqueueReportEmail pushes an emailed-report job to Redis.
func (d *Dispatcher) EnqueueReportEmail(ctx context.Context, payload ReportEmailPayload) error {
	return d.enqueue(ctx, QueueReportEmail, "report_email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}
