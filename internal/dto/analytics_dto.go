package dto

import (
	"github.com/shopspring/decimal"

	"github.com/raghav2811/VendorConnect/internal/analytics"
)

// VendorAnalyticsResponse is the complete per-vendor snapshot. Every field
// is computed fresh per request; a failed sub-fetch degrades its section to
// the zero value rather than failing the report.
type VendorAnalyticsResponse struct {
	VendorID           string                  `json:"vendor_id"`
	Sales              analytics.SalesSummary  `json:"revenue_metrics"`
	Customers          analytics.CustomerMetrics `json:"customer_metrics"`
	Business           BusinessMetrics         `json:"business_metrics"`
	Trend              []analytics.TrendPoint  `json:"revenue_trend"`
	TopItems           []analytics.RankedEntry `json:"top_items"`
	PeakHours          []analytics.PeakHour    `json:"peak_hours"`
	StatusDistribution map[string]int          `json:"status_distribution"`
	Insights           []analytics.Insight     `json:"insights"`
	StockHealth        analytics.StockHealth   `json:"stock_health"`
	GeneratedAt        string                  `json:"generated_at"`
}

type BusinessMetrics struct {
	MenuItemsCount  int `json:"menu_items_count"`
	ActiveMenuItems int `json:"active_menu_items"`
	StockItemsCount int `json:"stock_items_count"`
}

// VendorPerformanceRow is one vendor's lifetime totals in the global report.
type VendorPerformanceRow struct {
	VendorID          string          `json:"vendor_id"`
	VendorName        string          `json:"vendor_name"`
	TotalOrders       int             `json:"total_orders"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	LastOrderDate     *string         `json:"last_order_date,omitempty"`
}

// GlobalReportResponse is the platform-wide snapshot for the admin report
// page. Sections mirror the vendor snapshot but aggregate across tenants.
type GlobalReportResponse struct {
	Sales               analytics.SalesSummary    `json:"sales_analytics"`
	Customers           analytics.CustomerMetrics `json:"customer_analytics"`
	Inventory           analytics.StockHealth     `json:"inventory_analytics"`
	TopVendors          []analytics.RankedEntry   `json:"top_vendors"`
	MonthlyRevenue      []analytics.TrendPoint    `json:"monthly_revenue"`
	StatusDistribution  map[string]int            `json:"status_distribution"`
	VendorPerformance   []VendorPerformanceRow    `json:"vendor_performance"`
	MonthlyTransactions []analytics.MonthSummary  `json:"monthly_transactions"`
	LowStock            []StockItemResponse       `json:"low_stock_report"`
	GeneratedAt         string                    `json:"report_generated_at"`
}

// DashboardStatsResponse backs the admin landing page counters.
type DashboardStatsResponse struct {
	TotalVendors       int                        `json:"total_vendors"`
	TotalMenuItems     int                        `json:"total_menu_items"`
	TotalStockItems    int                        `json:"total_stock_items"`
	LowStockCount      int                        `json:"low_stock_count"`
	TotalStockValue    decimal.Decimal            `json:"total_stock_value"`
	RecentTransactions []StockTransactionResponse `json:"recent_transactions"`
}
