package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghav2811/VendorConnect/internal/model"
)

// SalesSummary holds revenue and order totals with month-over-month growth.
type SalesSummary struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	ThisMonthRevenue     decimal.Decimal `json:"this_month_revenue"`
	PreviousMonthRevenue decimal.Decimal `json:"previous_month_revenue"`
	TotalOrders          int             `json:"total_orders"`
	ThisMonthOrders      int             `json:"this_month_orders"`
	PreviousMonthOrders  int             `json:"previous_month_orders"`
	RevenueGrowthPct     float64         `json:"revenue_growth"`
	OrdersGrowthPct      float64         `json:"orders_growth"`
	AverageOrderValue    decimal.Decimal `json:"average_order_value"`
}

// monthStart truncates t to the first of its calendar month, UTC.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// growthPct returns the percentage change from prev to current, or 0 when
// there is no prior baseline. Growth with no baseline is reported as flat,
// never as infinite.
func growthPct(current, prev decimal.Decimal) float64 {
	if !prev.IsPositive() {
		return 0
	}
	pct, _ := current.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// SummarizeSales computes totals, this-month vs previous-month revenue and
// order counts, growth rates, and average order value over the given orders.
// Orders with a zero timestamp count toward totals but not toward any month.
func SummarizeSales(orders []model.Order, now time.Time) SalesSummary {
	s := SalesSummary{
		TotalRevenue:         decimal.Zero,
		ThisMonthRevenue:     decimal.Zero,
		PreviousMonthRevenue: decimal.Zero,
		AverageOrderValue:    decimal.Zero,
	}

	thisStart := monthStart(now)
	prevStart := thisStart.AddDate(0, -1, 0)

	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalAmount)
		s.TotalOrders++

		if o.OrderDate.IsZero() {
			continue
		}
		d := o.OrderDate.UTC()
		switch {
		case !d.Before(thisStart):
			s.ThisMonthRevenue = s.ThisMonthRevenue.Add(o.TotalAmount)
			s.ThisMonthOrders++
		case !d.Before(prevStart):
			s.PreviousMonthRevenue = s.PreviousMonthRevenue.Add(o.TotalAmount)
			s.PreviousMonthOrders++
		}
	}

	s.RevenueGrowthPct = growthPct(s.ThisMonthRevenue, s.PreviousMonthRevenue)
	if s.PreviousMonthOrders > 0 {
		s.OrdersGrowthPct = float64(s.ThisMonthOrders-s.PreviousMonthOrders) / float64(s.PreviousMonthOrders) * 100
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.TotalOrders))).Round(2)
	}
	return s
}

// RankedEntry is one row of a revenue ranking, immutable once produced.
type RankedEntry struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Orders   int             `json:"orders"`
	Quantity int             `json:"total_quantity"`
	Revenue  decimal.Decimal `json:"total_revenue"`
}

// rankByRevenue sorts descending by revenue. Ties keep first-seen order:
// sort.SliceStable over entries appended in discovery order guarantees it.
func rankByRevenue(entries []RankedEntry, limit int) []RankedEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Revenue.GreaterThan(entries[j].Revenue)
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// TopVendorsByRevenue groups orders by vendor, sums revenue and order counts,
// and returns at most limit entries sorted by revenue descending. names maps
// vendor ids to display names; unknown vendors keep an empty name.
func TopVendorsByRevenue(orders []model.Order, names map[uuid.UUID]string, limit int) []RankedEntry {
	index := make(map[uuid.UUID]int)
	var entries []RankedEntry

	for _, o := range orders {
		i, ok := index[o.VendorID]
		if !ok {
			i = len(entries)
			index[o.VendorID] = i
			entries = append(entries, RankedEntry{
				ID:      o.VendorID,
				Name:    names[o.VendorID],
				Revenue: decimal.Zero,
			})
		}
		entries[i].Revenue = entries[i].Revenue.Add(o.TotalAmount)
		entries[i].Orders++
	}
	return rankByRevenue(entries, limit)
}

// TopMenuItems groups order lines by menu item, sums quantity and revenue,
// and returns at most limit entries sorted by revenue descending. Lines
// without a preloaded MenuItem are still counted, keyed by MenuItemID.
func TopMenuItems(items []model.OrderItem, limit int) []RankedEntry {
	index := make(map[uuid.UUID]int)
	var entries []RankedEntry

	for _, it := range items {
		i, ok := index[it.MenuItemID]
		if !ok {
			name := ""
			if it.MenuItem != nil {
				name = it.MenuItem.Name
			}
			i = len(entries)
			index[it.MenuItemID] = i
			entries = append(entries, RankedEntry{
				ID:      it.MenuItemID,
				Name:    name,
				Revenue: decimal.Zero,
			})
		}
		entries[i].Orders++
		entries[i].Quantity += it.Quantity
		entries[i].Revenue = entries[i].Revenue.Add(it.TotalPrice)
	}
	return rankByRevenue(entries, limit)
}

// CustomerMetrics describes buyer behavior over an order set.
type CustomerMetrics struct {
	TotalCustomers        int     `json:"total_customers"`
	ActiveCustomers       int     `json:"active_customers"`
	NewCustomersThisMonth int     `json:"new_customers_this_month"`
	RepeatCustomers       int     `json:"repeat_customers"`
	RetentionRatePct      float64 `json:"retention_rate"`
	AvgOrdersPerCustomer  float64 `json:"avg_orders_per_customer"`
	CustomerGrowthPct     float64 `json:"customer_growth"`
}

// SummarizeCustomers computes distinct-buyer metrics. A repeat customer is
// any buyer with more than one order; retention is repeat/active. Customer
// growth compares buyers whose first order falls in the current month
// against those whose first order fell in the previous month, with the same
// zero-baseline guard as revenue growth.
func SummarizeCustomers(orders []model.Order, now time.Time) CustomerMetrics {
	var m CustomerMetrics

	counts := make(map[uuid.UUID]int)
	firstOrder := make(map[uuid.UUID]time.Time)
	thisMonth := make(map[uuid.UUID]struct{})

	thisStart := monthStart(now)
	prevStart := thisStart.AddDate(0, -1, 0)

	for _, o := range orders {
		if o.BuyerID == uuid.Nil {
			continue
		}
		counts[o.BuyerID]++
		if o.OrderDate.IsZero() {
			continue
		}
		d := o.OrderDate.UTC()
		if first, ok := firstOrder[o.BuyerID]; !ok || d.Before(first) {
			firstOrder[o.BuyerID] = d
		}
		if !d.Before(thisStart) {
			thisMonth[o.BuyerID] = struct{}{}
		}
	}

	m.TotalCustomers = len(counts)
	m.ActiveCustomers = len(counts)
	m.NewCustomersThisMonth = len(thisMonth)

	totalOrders := 0
	for _, n := range counts {
		totalOrders += n
		if n > 1 {
			m.RepeatCustomers++
		}
	}
	if m.ActiveCustomers > 0 {
		m.RetentionRatePct = float64(m.RepeatCustomers) / float64(m.ActiveCustomers) * 100
		m.AvgOrdersPerCustomer = float64(totalOrders) / float64(m.ActiveCustomers)
	}

	// First-order cohorts for growth.
	firstThis, firstPrev := 0, 0
	for _, d := range firstOrder {
		switch {
		case !d.Before(thisStart):
			firstThis++
		case !d.Before(prevStart):
			firstPrev++
		}
	}
	if firstPrev > 0 {
		m.CustomerGrowthPct = float64(firstThis-firstPrev) / float64(firstPrev) * 100
	}
	return m
}

// StatusDistribution counts orders per status for the status pie chart.
func StatusDistribution(orders []model.Order) map[string]int {
	dist := make(map[string]int)
	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = "unknown"
		}
		dist[status]++
	}
	return dist
}
