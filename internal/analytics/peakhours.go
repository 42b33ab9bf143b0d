package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/raghav2811/VendorConnect/internal/model"
)

// peakHoursLimit caps the histogram rows the dashboard grid can display.
const peakHoursLimit = 9

// PeakHour is one hour-of-day bucket with at least one order. This is a
// frequency histogram over a cyclical 24-value domain, not a time series.
type PeakHour struct {
	Hour    int             `json:"hour"`
	Label   string          `json:"display_hour"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// hourLabel formats an hour-of-day on a 12-hour clock: 0 → "12 AM",
// 12 → "12 PM", 13 → "1 PM".
func hourLabel(hour int) string {
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d %s", h12, period)
}

// PeakHours buckets orders by hour of day (UTC), drops empty hours, and
// returns the busiest hours sorted by order count descending, at most 9.
// Orders with a zero timestamp are skipped.
func PeakHours(orders []model.Order) []PeakHour {
	var buckets [24]PeakHour
	for h := range buckets {
		buckets[h] = PeakHour{Hour: h, Label: hourLabel(h), Revenue: decimal.Zero}
	}

	for _, o := range orders {
		if o.OrderDate.IsZero() {
			continue
		}
		h := o.OrderDate.UTC().Hour()
		buckets[h].Orders++
		buckets[h].Revenue = buckets[h].Revenue.Add(o.TotalAmount)
	}

	peaks := make([]PeakHour, 0, 24)
	for _, b := range buckets {
		if b.Orders > 0 {
			peaks = append(peaks, b)
		}
	}
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Orders > peaks[j].Orders })
	if len(peaks) > peakHoursLimit {
		peaks = peaks[:peakHoursLimit]
	}
	return peaks
}
