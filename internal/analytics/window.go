// Package analytics turns raw transactional records into derived business
// metrics. Everything here is pure, read-only computation over slices fetched
// by the caller: no package state, no I/O, safe for concurrent use.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raghav2811/VendorConnect/internal/model"
)

// PeriodKind selects the calendar bucketing for trend series.
type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
)

// Horizon lengths per period kind. These mirror the reporting cadence of the
// dashboard charts: a week of days, two months of weeks, a year of months.
const (
	daysHorizon   = 7
	weeksHorizon  = 8
	monthsHorizon = 12
)

// TrendPoint is one zero-initialized bucket of a revenue trend series,
// mutated only while folding and immutable once returned.
type TrendPoint struct {
	Label   string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`

	key string
}

// periodKey maps a timestamp to its bucket identity. Idempotent: the same
// timestamp always yields the same key regardless of horizon.
func periodKey(t time.Time, kind PeriodKind) string {
	t = t.UTC()
	switch kind {
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case PeriodMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

func periodLabel(t time.Time, kind PeriodKind) string {
	t = t.UTC()
	switch kind {
	case PeriodWeekly:
		_, week := t.ISOWeek()
		return fmt.Sprintf("Week %02d", week)
	case PeriodMonthly:
		return t.Format("Jan 2006")
	default:
		return t.Format("01/02")
	}
}

// buildBuckets creates the zero-filled horizon, oldest period first.
func buildBuckets(now time.Time, kind PeriodKind) []TrendPoint {
	now = now.UTC()

	var n int
	var step func(i int) time.Time
	switch kind {
	case PeriodWeekly:
		n = weeksHorizon
		step = func(i int) time.Time { return now.AddDate(0, 0, -7*i) }
	case PeriodMonthly:
		n = monthsHorizon
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		step = func(i int) time.Time { return first.AddDate(0, -i, 0) }
	default:
		n = daysHorizon
		step = func(i int) time.Time { return now.AddDate(0, 0, -i) }
	}

	buckets := make([]TrendPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		t := step(i)
		buckets = append(buckets, TrendPoint{
			Label:   periodLabel(t, kind),
			Revenue: decimal.Zero,
			key:     periodKey(t, kind),
		})
	}
	return buckets
}

// RevenueTrend folds orders into a zero-filled calendar window ending at now
// and returns the buckets most-recent-first. Orders outside the horizon, and
// orders with a zero timestamp, are ignored.
func RevenueTrend(orders []model.Order, kind PeriodKind, now time.Time) []TrendPoint {
	buckets := buildBuckets(now, kind)
	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		index[b.key] = i
	}

	for _, o := range orders {
		if o.OrderDate.IsZero() {
			continue
		}
		if i, ok := index[periodKey(o.OrderDate, kind)]; ok {
			buckets[i].Revenue = buckets[i].Revenue.Add(o.TotalAmount)
			buckets[i].Orders++
		}
	}

	// Most-recent-first is part of the contract with chart consumers.
	for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	}
	return buckets
}
