package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/raghav2811/VendorConnect/internal/model"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name    string
		current int
		reorder int
		want    StockStatus
	}{
		{"zero stock is critical", 0, 20, StockCritical},
		{"at reorder level is low", 20, 20, StockLow},
		{"below reorder level is low", 15, 20, StockLow},
		{"above reorder level is healthy", 25, 20, StockHealthy},
		{"one unit above zero with zero reorder is healthy", 1, 0, StockHealthy},
		{"zero stock with zero reorder is still critical", 0, 0, StockCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStock(model.StockItem{CurrentStock: tt.current, ReorderLevel: tt.reorder})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateStockHealth(t *testing.T) {
	items := []model.StockItem{
		{ItemName: "Flour", CurrentStock: 0, ReorderLevel: 20, UnitCost: decimal.NewFromInt(5)},
		{ItemName: "Sugar", CurrentStock: 15, ReorderLevel: 20, UnitCost: decimal.NewFromInt(2)},
		{ItemName: "Oil", CurrentStock: 50, ReorderLevel: 20, UnitCost: decimal.NewFromInt(10)},
		{ItemName: "Salt", CurrentStock: 40, ReorderLevel: 20, UnitCost: decimal.NewFromInt(1)},
	}

	h := EvaluateStockHealth(items)

	assert.Equal(t, 4, h.TotalItems)
	// 0*5 + 15*2 + 50*10 + 40*1 = 570
	assert.True(t, h.TotalValue.Equal(decimal.NewFromInt(570)), "total value %s", h.TotalValue)
	assert.Equal(t, 2, h.LowStockCount, "critical records count as low too")
	assert.Equal(t, 1, h.CriticalCount)
	assert.InDelta(t, 50.0, h.EfficiencyPct, 0.001)
	assert.Len(t, h.LowStock, 2)
	assert.Len(t, h.CriticalStock, 1)
	assert.Equal(t, "Flour", h.CriticalStock[0].ItemName)
}

func TestEvaluateStockHealthEmpty(t *testing.T) {
	h := EvaluateStockHealth(nil)

	assert.Equal(t, 0, h.TotalItems)
	assert.True(t, h.TotalValue.IsZero())
	assert.InDelta(t, 100.0, h.EfficiencyPct, 0.001, "empty inventory is vacuously efficient")
}

func TestEvaluateStockHealthEfficiencyMonotonic(t *testing.T) {
	healthy := model.StockItem{CurrentStock: 100, ReorderLevel: 10, UnitCost: decimal.NewFromInt(1)}
	low := model.StockItem{CurrentStock: 5, ReorderLevel: 10, UnitCost: decimal.NewFromInt(1)}

	all := EvaluateStockHealth([]model.StockItem{healthy, healthy, healthy})
	one := EvaluateStockHealth([]model.StockItem{healthy, healthy, low})
	two := EvaluateStockHealth([]model.StockItem{healthy, low, low})

	assert.Greater(t, all.EfficiencyPct, one.EfficiencyPct)
	assert.Greater(t, one.EfficiencyPct, two.EfficiencyPct)
	assert.InDelta(t, 100.0, all.EfficiencyPct, 0.001)
}
