package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghav2811/VendorConnect/internal/model"
)

func orderAtHour(hour int, amount int64) model.Order {
	return model.Order{
		TotalAmount: decimal.NewFromInt(amount),
		OrderDate:   time.Date(2024, 3, 15, hour, 30, 0, 0, time.UTC),
	}
}

func TestHourLabel(t *testing.T) {
	assert.Equal(t, "12 AM", hourLabel(0))
	assert.Equal(t, "1 AM", hourLabel(1))
	assert.Equal(t, "11 AM", hourLabel(11))
	assert.Equal(t, "12 PM", hourLabel(12))
	assert.Equal(t, "1 PM", hourLabel(13))
	assert.Equal(t, "11 PM", hourLabel(23))
}

func TestPeakHours(t *testing.T) {
	orders := []model.Order{
		orderAtHour(12, 10),
		orderAtHour(12, 20),
		orderAtHour(12, 30),
		orderAtHour(18, 15),
		orderAtHour(18, 25),
		orderAtHour(9, 5),
	}

	peaks := PeakHours(orders)

	require.Len(t, peaks, 3, "empty hours are dropped")
	assert.Equal(t, 12, peaks[0].Hour)
	assert.Equal(t, 3, peaks[0].Orders)
	assert.True(t, peaks[0].Revenue.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "12 PM", peaks[0].Label)
	assert.Equal(t, 18, peaks[1].Hour)
	assert.Equal(t, 9, peaks[2].Hour)
}

func TestPeakHoursCap(t *testing.T) {
	var orders []model.Order
	for h := 0; h < 15; h++ {
		orders = append(orders, orderAtHour(h, 10))
	}

	peaks := PeakHours(orders)

	assert.Len(t, peaks, peakHoursLimit)
}

func TestPeakHoursTieKeepsHourOrder(t *testing.T) {
	orders := []model.Order{
		orderAtHour(9, 10),
		orderAtHour(14, 10),
	}

	peaks := PeakHours(orders)

	require.Len(t, peaks, 2)
	assert.Equal(t, 9, peaks[0].Hour, "equal counts keep ascending hour order")
	assert.Equal(t, 14, peaks[1].Hour)
}

func TestPeakHoursEmptyAndZeroTimestamps(t *testing.T) {
	assert.Empty(t, PeakHours(nil))
	assert.Empty(t, PeakHours([]model.Order{{TotalAmount: decimal.NewFromInt(10)}}))
}
