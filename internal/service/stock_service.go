package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/analytics"
	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/repository"
	"github.com/raghav2811/VendorConnect/internal/worker"
)

type StockService interface {
	CreateItem(ctx context.Context, vendorID uuid.UUID, req dto.CreateStockItemRequest) (*dto.StockItemResponse, error)
	ListItems(ctx context.Context, vendorID *uuid.UUID) ([]dto.StockItemResponse, error)
	RecordTransaction(ctx context.Context, vendorID, userID uuid.UUID, req dto.CreateStockTransactionRequest) (*dto.StockTransactionResponse, error)
	ListTransactions(ctx context.Context, vendorID *uuid.UUID, limit int) ([]dto.StockTransactionResponse, error)
	LowStockAlerts(ctx context.Context, vendorID *uuid.UUID) ([]dto.StockAlertResponse, error)
}

type stockService struct {
	repo       repository.StockRepository
	dispatcher *worker.Dispatcher
}

func NewStockService(repo repository.StockRepository, dispatcher *worker.Dispatcher) StockService {
	return &stockService{repo: repo, dispatcher: dispatcher}
}

func (s *stockService) CreateItem(ctx context.Context, vendorID uuid.UUID, req dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	item := &model.StockItem{
		VendorID:     vendorID,
		ItemName:     req.ItemName,
		Description:  req.Description,
		Unit:         req.Unit,
		MinimumStock: req.MinimumStock,
		MaximumStock: req.MaximumStock,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := stockItemToResponse(item)
	return &resp, nil
}

func (s *stockService) ListItems(ctx context.Context, vendorID *uuid.UUID) ([]dto.StockItemResponse, error) {
	items, err := s.repo.List(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return stockItemResponses(items), nil
}

// RecordTransaction validates and applies one inventory movement, creating
// the transaction record and mutating current_stock in a single transaction.
// Movements that would drive stock negative are rejected — current_stock is
// never allowed below zero. After commit, a low-stock alert job is enqueued
// when the record sits at or below its reorder level.
func (s *stockService) RecordTransaction(ctx context.Context, vendorID, userID uuid.UUID, req dto.CreateStockTransactionRequest) (*dto.StockTransactionResponse, error) {
	stockID, err := uuid.Parse(req.StockID)
	if err != nil {
		return nil, fmt.Errorf("invalid stock_id: %w", err)
	}

	var delta int
	switch req.Type {
	case model.TxIn:
		if req.Quantity <= 0 {
			return nil, errors.New("quantity must be positive for stock-in")
		}
		delta = req.Quantity
	case model.TxOut:
		if req.Quantity <= 0 {
			return nil, errors.New("quantity must be positive for stock-out")
		}
		delta = -req.Quantity
	case model.TxAdjustment:
		if req.Quantity == 0 {
			return nil, errors.New("adjustment quantity must be non-zero")
		}
		delta = req.Quantity
	default:
		return nil, errors.New("unknown transaction type")
	}

	magnitude := req.Quantity
	if magnitude < 0 {
		magnitude = -magnitude
	}
	totalCost := req.UnitCost.Mul(decimal.NewFromInt(int64(magnitude)))

	var record model.StockTransaction
	var newStock int
	var reorderLevel int
	var itemName string

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		item, err := s.repo.FindByIDTx(tx, stockID)
		if err != nil {
			return errors.New("stock item not found")
		}
		if item.VendorID != vendorID {
			return errors.New("stock item does not belong to this vendor")
		}
		if item.CurrentStock+delta < 0 {
			return fmt.Errorf("insufficient stock: %d on hand, movement of %d requested", item.CurrentStock, delta)
		}

		record = model.StockTransaction{
			StockID:         stockID,
			VendorID:        vendorID,
			Type:            req.Type,
			Quantity:        req.Quantity,
			UnitCost:        req.UnitCost,
			TotalCost:       totalCost,
			ReferenceNumber: req.ReferenceNumber,
			Notes:           req.Notes,
			CreatedBy:       userID,
		}
		if err := s.repo.CreateTransactionTx(tx, &record); err != nil {
			return err
		}
		if err := s.repo.AdjustStockTx(tx, stockID, delta); err != nil {
			return err
		}

		newStock = item.CurrentStock + delta
		reorderLevel = item.ReorderLevel
		itemName = item.ItemName
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async alert — best effort, fire and forget.
	if s.dispatcher != nil && newStock <= reorderLevel {
		_ = s.dispatcher.EnqueueStockAlert(ctx, worker.StockAlertPayload{
			StockID:      stockID.String(),
			VendorID:     vendorID.String(),
			ItemName:     itemName,
			CurrentStock: newStock,
			ReorderLevel: reorderLevel,
		})
	}

	resp := stockTransactionToResponse(&record)
	resp.ItemName = itemName
	return &resp, nil
}

func (s *stockService) ListTransactions(ctx context.Context, vendorID *uuid.UUID, limit int) ([]dto.StockTransactionResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	txs, err := s.repo.ListTransactions(ctx, vendorID, nil, limit)
	if err != nil {
		return nil, err
	}
	return stockTransactionResponses(txs), nil
}

func (s *stockService) LowStockAlerts(ctx context.Context, vendorID *uuid.UUID) ([]dto.StockAlertResponse, error) {
	items, err := s.repo.ListLow(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockAlertResponse, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, dto.StockAlertResponse{
			StockItemResponse: stockItemToResponse(&item),
			Deficit:           item.ReorderLevel - item.CurrentStock,
		})
	}
	return alerts, nil
}

func stockItemToResponse(s *model.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		ID:           s.ID.String(),
		VendorID:     s.VendorID.String(),
		ItemName:     s.ItemName,
		Unit:         s.Unit,
		CurrentStock: s.CurrentStock,
		MinimumStock: s.MinimumStock,
		MaximumStock: s.MaximumStock,
		ReorderLevel: s.ReorderLevel,
		UnitCost:     s.UnitCost,
		Status:       string(analytics.ClassifyStock(*s)),
	}
}

func stockTransactionToResponse(t *model.StockTransaction) dto.StockTransactionResponse {
	resp := dto.StockTransactionResponse{
		ID:              t.ID.String(),
		StockID:         t.StockID.String(),
		Type:            t.Type,
		Quantity:        t.Quantity,
		UnitCost:        t.UnitCost,
		TotalCost:       t.TotalCost,
		ReferenceNumber: t.ReferenceNumber,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.Stock != nil {
		resp.ItemName = t.Stock.ItemName
	}
	return resp
}
