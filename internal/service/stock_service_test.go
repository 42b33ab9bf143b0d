package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/model"
)

func seedStockItem(repo *stubStockRepo, vendorID uuid.UUID, current, reorder int) uuid.UUID {
	item := &model.StockItem{
		VendorID:     vendorID,
		ItemName:     "Rice",
		Unit:         "kg",
		CurrentStock: current,
		ReorderLevel: reorder,
		UnitCost:     decimal.NewFromInt(3),
	}
	_ = repo.Create(context.Background(), item)
	return item.ID
}

func TestRecordTransactionIn(t *testing.T) {
	repo := newStubStockRepo()
	vendorID := uuid.New()
	stockID := seedStockItem(repo, vendorID, 10, 5)

	svc := NewStockService(repo, nil)

	resp, err := svc.RecordTransaction(context.Background(), vendorID, uuid.New(), dto.CreateStockTransactionRequest{
		StockID:  stockID.String(),
		Type:     model.TxIn,
		Quantity: 40,
		UnitCost: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	assert.Equal(t, 50, repo.items[stockID].CurrentStock)
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "Rice", resp.ItemName)
	require.Len(t, repo.txs, 1)
}

func TestRecordTransactionOut(t *testing.T) {
	repo := newStubStockRepo()
	vendorID := uuid.New()
	stockID := seedStockItem(repo, vendorID, 10, 5)

	svc := NewStockService(repo, nil)

	_, err := svc.RecordTransaction(context.Background(), vendorID, uuid.New(), dto.CreateStockTransactionRequest{
		StockID:  stockID.String(),
		Type:     model.TxOut,
		Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, repo.items[stockID].CurrentStock)
}

func TestRecordTransactionNeverNegative(t *testing.T) {
	repo := newStubStockRepo()
	vendorID := uuid.New()
	stockID := seedStockItem(repo, vendorID, 10, 5)

	svc := NewStockService(repo, nil)

	_, err := svc.RecordTransaction(context.Background(), vendorID, uuid.New(), dto.CreateStockTransactionRequest{
		StockID:  stockID.String(),
		Type:     model.TxOut,
		Quantity: 11,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Equal(t, 10, repo.items[stockID].CurrentStock, "rejected movements leave stock untouched")
	assert.Empty(t, repo.txs)
}

func TestRecordTransactionAdjustment(t *testing.T) {
	repo := newStubStockRepo()
	vendorID := uuid.New()
	stockID := seedStockItem(repo, vendorID, 10, 5)

	svc := NewStockService(repo, nil)

	// Negative adjustment: signed delta, cost from magnitude.
	resp, err := svc.RecordTransaction(context.Background(), vendorID, uuid.New(), dto.CreateStockTransactionRequest{
		StockID:  stockID.String(),
		Type:     model.TxAdjustment,
		Quantity: -3,
		UnitCost: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, repo.items[stockID].CurrentStock)
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(6)))

	// Zero adjustments are meaningless and rejected.
	_, err = svc.RecordTransaction(context.Background(), vendorID, uuid.New(), dto.CreateStockTransactionRequest{
		StockID:  stockID.String(),
		Type:     model.TxAdjustment,
		Quantity: 0,
	})
	require.Error(t, err)
}

func TestRecordTransactionRejectsNonPositiveMagnitudes(t *testing.T) {
	repo := newStubStockRepo()
	vendorID := uuid.New()
	stockID := seedStockItem(repo, vendorID, 10, 5)

	svc := NewStockService(repo, nil)

	for _, kind := range []string{model.TxIn, model.TxOut} {
		_, err := svc.RecordTransaction(context.Background(), vendorID, uuid.New(), dto.CreateStockTransactionRequest{
			StockID:  stockID.String(),
			Type:     kind,
			Quantity: -5,
		})
		require.Error(t, err, "negative quantity for %s", kind)
	}
}

func TestRecordTransactionCrossTenantRejected(t *testing.T) {
	repo := newStubStockRepo()
	owner := uuid.New()
	stockID := seedStockItem(repo, owner, 10, 5)

	svc := NewStockService(repo, nil)

	_, err := svc.RecordTransaction(context.Background(), uuid.New(), uuid.New(), dto.CreateStockTransactionRequest{
		StockID:  stockID.String(),
		Type:     model.TxIn,
		Quantity: 5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}

func TestCreateItemClassifiesStatus(t *testing.T) {
	repo := newStubStockRepo()
	svc := NewStockService(repo, nil)

	resp, err := svc.CreateItem(context.Background(), uuid.New(), dto.CreateStockItemRequest{
		ItemName:     "Flour",
		Unit:         "kg",
		ReorderLevel: 20,
		UnitCost:     decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "critical", resp.Status, "new items start at zero stock")
}

func TestLowStockAlerts(t *testing.T) {
	repo := newStubStockRepo()
	vendorID := uuid.New()
	seedStockItem(repo, vendorID, 3, 10)
	seedStockItem(repo, vendorID, 50, 10)

	svc := NewStockService(repo, nil)

	alerts, err := svc.LowStockAlerts(context.Background(), &vendorID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, 7, alerts[0].Deficit)
	assert.Equal(t, "low", alerts[0].Status)
}
