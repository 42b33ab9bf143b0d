package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/raghav2811/VendorConnect/internal/model"
)

// StockStatus classifies a single stock record.
type StockStatus string

const (
	StockCritical StockStatus = "critical"
	StockLow      StockStatus = "low"
	StockHealthy  StockStatus = "healthy"
)

// ClassifyStock returns exactly one status for a record. Comparisons are
// whole-unit integer semantics; ReorderLevel is the low threshold.
func ClassifyStock(s model.StockItem) StockStatus {
	switch {
	case s.CurrentStock == 0:
		return StockCritical
	case s.CurrentStock <= s.ReorderLevel:
		return StockLow
	default:
		return StockHealthy
	}
}

// StockHealth aggregates inventory condition across a set of stock records.
// LowStockCount includes critical records; CriticalStock is a subset of
// LowStock.
type StockHealth struct {
	TotalItems    int             `json:"total_stock_items"`
	TotalValue    decimal.Decimal `json:"total_stock_value"`
	LowStockCount int             `json:"low_stock_count"`
	CriticalCount int             `json:"critical_stock_count"`
	EfficiencyPct float64         `json:"stock_efficiency"`

	LowStock      []model.StockItem `json:"-"`
	CriticalStock []model.StockItem `json:"-"`
}

// EvaluateStockHealth classifies every record and computes aggregate value
// and efficiency. An empty inventory reports 100% efficiency: there is
// nothing low, so the metric is vacuously perfect rather than undefined.
func EvaluateStockHealth(items []model.StockItem) StockHealth {
	h := StockHealth{TotalValue: decimal.Zero}
	h.TotalItems = len(items)

	for _, s := range items {
		value := decimal.NewFromInt(int64(s.CurrentStock)).Mul(s.UnitCost)
		h.TotalValue = h.TotalValue.Add(value)

		switch ClassifyStock(s) {
		case StockCritical:
			h.CriticalCount++
			h.CriticalStock = append(h.CriticalStock, s)
			h.LowStockCount++
			h.LowStock = append(h.LowStock, s)
		case StockLow:
			h.LowStockCount++
			h.LowStock = append(h.LowStock, s)
		}
	}

	if h.TotalItems == 0 {
		h.EfficiencyPct = 100
	} else {
		h.EfficiencyPct = float64(h.TotalItems-h.LowStockCount) / float64(h.TotalItems) * 100
	}
	return h
}
