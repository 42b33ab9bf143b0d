package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/raghav2811/VendorConnect/internal/analytics"
	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/repository"
)

// Ranking sizes: platform-wide vendor leaderboard and per-vendor item list.
const (
	topVendorsLimit = 5
	topItemsLimit   = 10
)

// ReportService composes analytics snapshots. Aggregation entry points never
// return errors: a failed fetch degrades its section to the documented empty
// value and the rest of the snapshot is still produced.
type ReportService interface {
	VendorAnalytics(ctx context.Context, vendorID uuid.UUID) *dto.VendorAnalyticsResponse
	VendorTrend(ctx context.Context, vendorID uuid.UUID, kind analytics.PeriodKind) []analytics.TrendPoint
	VendorTopItems(ctx context.Context, vendorID uuid.UUID, limit int) []analytics.RankedEntry
	VendorPeakHours(ctx context.Context, vendorID uuid.UUID) []analytics.PeakHour
	VendorInsights(ctx context.Context, vendorID uuid.UUID) []analytics.Insight
	Overview(ctx context.Context) *dto.GlobalReportResponse
	DashboardStats(ctx context.Context) *dto.DashboardStatsResponse
	MonthlyTransactions(ctx context.Context) []analytics.MonthSummary
}

type reportService struct {
	orders  repository.OrderRepository
	stock   repository.StockRepository
	menu    repository.MenuRepository
	vendors repository.VendorRepository

	now func() time.Time
}

func NewReportService(
	orders repository.OrderRepository,
	stock repository.StockRepository,
	menu repository.MenuRepository,
	vendors repository.VendorRepository,
) ReportService {
	return &reportService{
		orders:  orders,
		stock:   stock,
		menu:    menu,
		vendors: vendors,
		now:     time.Now,
	}
}

// ── Degrading fetch helpers ──────────────────────────────────────────────────
// Every record-source failure is logged and replaced with an empty slice; a
// single unreachable table must never abort a report.

func (s *reportService) fetchOrders(ctx context.Context, vendorID *uuid.UUID) []model.Order {
	orders, err := s.orders.List(ctx, vendorID)
	if err != nil {
		log.Error().Err(err).Msg("report: fetching orders failed, section degrades to empty")
		return nil
	}
	return orders
}

func (s *reportService) fetchOrderItems(ctx context.Context, orders []model.Order) []model.OrderItem {
	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := s.orders.ListItems(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("report: fetching order items failed, section degrades to empty")
		return nil
	}
	return items
}

func (s *reportService) fetchStock(ctx context.Context, vendorID *uuid.UUID) []model.StockItem {
	items, err := s.stock.List(ctx, vendorID)
	if err != nil {
		log.Error().Err(err).Msg("report: fetching stock failed, section degrades to empty")
		return nil
	}
	return items
}

func (s *reportService) fetchMenu(ctx context.Context, vendorID *uuid.UUID) []model.MenuItem {
	items, err := s.menu.List(ctx, vendorID)
	if err != nil {
		log.Error().Err(err).Msg("report: fetching menu failed, section degrades to empty")
		return nil
	}
	return items
}

func (s *reportService) fetchVendors(ctx context.Context) []model.Vendor {
	vendors, err := s.vendors.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("report: fetching vendors failed, section degrades to empty")
		return nil
	}
	return vendors
}

func (s *reportService) fetchTransactions(ctx context.Context, vendorID *uuid.UUID, since time.Time) []model.StockTransaction {
	txs, err := s.stock.ListTransactions(ctx, vendorID, &since, 0)
	if err != nil {
		log.Error().Err(err).Msg("report: fetching stock transactions failed, section degrades to empty")
		return nil
	}
	return txs
}

// ── Vendor scope ─────────────────────────────────────────────────────────────

// VendorAnalytics assembles the complete snapshot for one vendor. The three
// independent fetches fan out concurrently and join at a single barrier;
// order items are fetched afterwards because they depend on the order set.
func (s *reportService) VendorAnalytics(ctx context.Context, vendorID uuid.UUID) *dto.VendorAnalyticsResponse {
	now := s.now()

	var (
		orders []model.Order
		stock  []model.StockItem
		menu   []model.MenuItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { orders = s.fetchOrders(gctx, &vendorID); return nil })
	g.Go(func() error { stock = s.fetchStock(gctx, &vendorID); return nil })
	g.Go(func() error { menu = s.fetchMenu(gctx, &vendorID); return nil })
	_ = g.Wait() // closures never fail; the barrier is what matters

	items := s.fetchOrderItems(ctx, orders)

	sales := analytics.SummarizeSales(orders, now)
	topItems := analytics.TopMenuItems(items, topItemsLimit)
	peaks := analytics.PeakHours(orders)

	activeMenu := 0
	for _, m := range menu {
		if m.IsAvailable {
			activeMenu++
		}
	}

	return &dto.VendorAnalyticsResponse{
		VendorID:  vendorID.String(),
		Sales:     sales,
		Customers: analytics.SummarizeCustomers(orders, now),
		Business: dto.BusinessMetrics{
			MenuItemsCount:  len(menu),
			ActiveMenuItems: activeMenu,
			StockItemsCount: len(stock),
		},
		Trend:              analytics.RevenueTrend(orders, analytics.PeriodDaily, now),
		TopItems:           topItems,
		PeakHours:          peaks,
		StatusDistribution: analytics.StatusDistribution(orders),
		Insights: analytics.BuildInsights(analytics.InsightFacts{
			RevenueGrowthPct: sales.RevenueGrowthPct,
			PeakHours:        peaks,
			TopItems:         topItems,
			TotalMenuItems:   len(menu),
			ActiveMenuItems:  activeMenu,
		}),
		StockHealth: analytics.EvaluateStockHealth(stock),
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}
}

func (s *reportService) VendorTrend(ctx context.Context, vendorID uuid.UUID, kind analytics.PeriodKind) []analytics.TrendPoint {
	return analytics.RevenueTrend(s.fetchOrders(ctx, &vendorID), kind, s.now())
}

func (s *reportService) VendorTopItems(ctx context.Context, vendorID uuid.UUID, limit int) []analytics.RankedEntry {
	if limit <= 0 {
		limit = topItemsLimit
	}
	orders := s.fetchOrders(ctx, &vendorID)
	return analytics.TopMenuItems(s.fetchOrderItems(ctx, orders), limit)
}

func (s *reportService) VendorPeakHours(ctx context.Context, vendorID uuid.UUID) []analytics.PeakHour {
	return analytics.PeakHours(s.fetchOrders(ctx, &vendorID))
}

// VendorInsights computes just the facts the rule table reads — orders,
// their items and the menu — without the rest of the snapshot.
func (s *reportService) VendorInsights(ctx context.Context, vendorID uuid.UUID) []analytics.Insight {
	now := s.now()

	var (
		orders []model.Order
		menu   []model.MenuItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { orders = s.fetchOrders(gctx, &vendorID); return nil })
	g.Go(func() error { menu = s.fetchMenu(gctx, &vendorID); return nil })
	_ = g.Wait()

	items := s.fetchOrderItems(ctx, orders)

	activeMenu := 0
	for _, m := range menu {
		if m.IsAvailable {
			activeMenu++
		}
	}

	return analytics.BuildInsights(analytics.InsightFacts{
		RevenueGrowthPct: analytics.SummarizeSales(orders, now).RevenueGrowthPct,
		PeakHours:        analytics.PeakHours(orders),
		TopItems:         analytics.TopMenuItems(items, topItemsLimit),
		TotalMenuItems:   len(menu),
		ActiveMenuItems:  activeMenu,
	})
}

// ── Global scope ─────────────────────────────────────────────────────────────

// Overview assembles the platform-wide snapshot: all four record-source
// fetches are independent and fan out concurrently.
func (s *reportService) Overview(ctx context.Context) *dto.GlobalReportResponse {
	now := s.now()

	var (
		orders  []model.Order
		stock   []model.StockItem
		txs     []model.StockTransaction
		vendors []model.Vendor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { orders = s.fetchOrders(gctx, nil); return nil })
	g.Go(func() error { stock = s.fetchStock(gctx, nil); return nil })
	g.Go(func() error { txs = s.fetchTransactions(gctx, nil, now.AddDate(0, 0, -365)); return nil })
	g.Go(func() error { vendors = s.fetchVendors(gctx); return nil })
	_ = g.Wait()

	names := make(map[uuid.UUID]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}

	health := analytics.EvaluateStockHealth(stock)

	return &dto.GlobalReportResponse{
		Sales:               analytics.SummarizeSales(orders, now),
		Customers:           analytics.SummarizeCustomers(orders, now),
		Inventory:           health,
		TopVendors:          analytics.TopVendorsByRevenue(orders, names, topVendorsLimit),
		MonthlyRevenue:      analytics.RevenueTrend(orders, analytics.PeriodMonthly, now),
		StatusDistribution:  analytics.StatusDistribution(orders),
		VendorPerformance:   vendorPerformance(vendors, orders),
		MonthlyTransactions: analytics.MonthlyTransactionSummary(txs, now),
		LowStock:            stockItemResponses(health.LowStock),
		GeneratedAt:         now.UTC().Format(time.RFC3339),
	}
}

func (s *reportService) DashboardStats(ctx context.Context) *dto.DashboardStatsResponse {
	var (
		vendors []model.Vendor
		menu    []model.MenuItem
		stock   []model.StockItem
		recent  []model.StockTransaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { vendors = s.fetchVendors(gctx); return nil })
	g.Go(func() error { menu = s.fetchMenu(gctx, nil); return nil })
	g.Go(func() error { stock = s.fetchStock(gctx, nil); return nil })
	g.Go(func() error {
		txs, err := s.stock.ListTransactions(gctx, nil, nil, 10)
		if err != nil {
			log.Error().Err(err).Msg("report: fetching recent transactions failed")
			return nil
		}
		recent = txs
		return nil
	})
	_ = g.Wait()

	health := analytics.EvaluateStockHealth(stock)

	return &dto.DashboardStatsResponse{
		TotalVendors:       len(vendors),
		TotalMenuItems:     len(menu),
		TotalStockItems:    health.TotalItems,
		LowStockCount:      health.LowStockCount,
		TotalStockValue:    health.TotalValue,
		RecentTransactions: stockTransactionResponses(recent),
	}
}

func (s *reportService) MonthlyTransactions(ctx context.Context) []analytics.MonthSummary {
	now := s.now()
	txs := s.fetchTransactions(ctx, nil, now.AddDate(0, 0, -365))
	return analytics.MonthlyTransactionSummary(txs, now)
}

// ── Assembly helpers ─────────────────────────────────────────────────────────

// vendorPerformance computes lifetime totals per vendor. Vendors without
// orders still appear, with zero totals.
func vendorPerformance(vendors []model.Vendor, orders []model.Order) []dto.VendorPerformanceRow {
	type acc struct {
		count int
		total decimal.Decimal
		last  time.Time
	}
	byVendor := make(map[uuid.UUID]*acc, len(vendors))
	for _, o := range orders {
		a, ok := byVendor[o.VendorID]
		if !ok {
			a = &acc{total: decimal.Zero}
			byVendor[o.VendorID] = a
		}
		a.count++
		a.total = a.total.Add(o.TotalAmount)
		if o.OrderDate.After(a.last) {
			a.last = o.OrderDate
		}
	}

	rows := make([]dto.VendorPerformanceRow, 0, len(vendors))
	for _, v := range vendors {
		row := dto.VendorPerformanceRow{
			VendorID:          v.ID.String(),
			VendorName:        v.Name,
			TotalAmount:       decimal.Zero,
			AverageOrderValue: decimal.Zero,
		}
		if a, ok := byVendor[v.ID]; ok {
			row.TotalOrders = a.count
			row.TotalAmount = a.total
			row.AverageOrderValue = a.total.Div(decimal.NewFromInt(int64(a.count))).Round(2)
			if !a.last.IsZero() {
				last := a.last.UTC().Format(time.RFC3339)
				row.LastOrderDate = &last
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func stockItemResponses(items []model.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, s := range items {
		out = append(out, stockItemToResponse(&s))
	}
	return out
}

func stockTransactionResponses(txs []model.StockTransaction) []dto.StockTransactionResponse {
	out := make([]dto.StockTransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, stockTransactionToResponse(&t))
	}
	return out
}
