package analytics

import (
	"sort"
	"time"

	"github.com/raghav2811/VendorConnect/internal/model"
)

// monthsLimit caps the historical summary at one year of active months.
const monthsLimit = 12

// MonthSummary aggregates stock movement for one calendar month with at
// least one transaction. Unlike trend buckets, empty months are never
// synthesized: the historical summary is an activity log, not a chart
// series.
type MonthSummary struct {
	Month            string `json:"month"` // e.g. "March 2024"
	TotalIn          int    `json:"total_in"`
	TotalOut         int    `json:"total_out"`
	TotalAdjustments int    `json:"total_adjustments"`
	NetChange        int    `json:"net_change"`

	start time.Time
}

// MonthlyTransactionSummary groups transactions from the trailing 365 days
// by calendar month. Net change counts in minus out; adjustments are
// reported by absolute magnitude and excluded from net change. Output is
// most-recent-first, at most 12 months. Transactions with a zero timestamp
// are skipped.
func MonthlyTransactionSummary(txs []model.StockTransaction, now time.Time) []MonthSummary {
	cutoff := now.UTC().AddDate(0, 0, -365)

	byMonth := make(map[string]*MonthSummary)
	for _, tx := range txs {
		if tx.CreatedAt.IsZero() {
			continue
		}
		d := tx.CreatedAt.UTC()
		if d.Before(cutoff) || d.After(now.UTC()) {
			continue
		}

		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		label := start.Format("January 2006")
		m, ok := byMonth[label]
		if !ok {
			m = &MonthSummary{Month: label, start: start}
			byMonth[label] = m
		}

		switch tx.Type {
		case model.TxIn:
			m.TotalIn += tx.Quantity
			m.NetChange += tx.Quantity
		case model.TxOut:
			m.TotalOut += tx.Quantity
			m.NetChange -= tx.Quantity
		case model.TxAdjustment:
			q := tx.Quantity
			if q < 0 {
				q = -q
			}
			m.TotalAdjustments += q
		}
	}

	months := make([]MonthSummary, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].start.After(months[j].start) })
	if len(months) > monthsLimit {
		months = months[:monthsLimit]
	}
	return months
}
