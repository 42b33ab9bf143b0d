package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/model"
)

type StockRepository interface {
	Create(ctx context.Context, s *model.StockItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.StockItem, error)
	// List returns all stock records, optionally scoped to one vendor.
	List(ctx context.Context, vendorID *uuid.UUID) ([]model.StockItem, error)
	// ListLow returns records at or below their reorder level.
	ListLow(ctx context.Context, vendorID *uuid.UUID) ([]model.StockItem, error)
	// AdjustStockTx applies a signed delta to current_stock inside a tx.
	AdjustStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	CreateTransactionTx(tx *gorm.DB, t *model.StockTransaction) error
	// ListTransactions returns transactions newest-first, optionally scoped
	// to one vendor and to records created at or after since.
	ListTransactions(ctx context.Context, vendorID *uuid.UUID, since *time.Time, limit int) ([]model.StockTransaction, error)
	DB() *gorm.DB
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) DB() *gorm.DB { return r.db }

func (r *stockRepo) Create(ctx context.Context, s *model.StockItem) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *stockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	var s model.StockItem
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *stockRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.StockItem, error) {
	var s model.StockItem
	err := tx.First(&s, id).Error
	return &s, err
}

func (r *stockRepo) List(ctx context.Context, vendorID *uuid.UUID) ([]model.StockItem, error) {
	var items []model.StockItem
	q := r.db.WithContext(ctx).Order("item_name")
	if vendorID != nil {
		q = q.Where("vendor_id = ?", *vendorID)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *stockRepo) ListLow(ctx context.Context, vendorID *uuid.UUID) ([]model.StockItem, error) {
	var items []model.StockItem
	q := r.db.WithContext(ctx).
		Where("current_stock <= reorder_level").
		Order("current_stock")
	if vendorID != nil {
		q = q.Where("vendor_id = ?", *vendorID)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *stockRepo) AdjustStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.StockItem{}).Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", delta)).Error
}

func (r *stockRepo) CreateTransactionTx(tx *gorm.DB, t *model.StockTransaction) error {
	return tx.Create(t).Error
}

func (r *stockRepo) ListTransactions(ctx context.Context, vendorID *uuid.UUID, since *time.Time, limit int) ([]model.StockTransaction, error) {
	var txs []model.StockTransaction
	q := r.db.WithContext(ctx).Preload("Stock").Order("created_at DESC")
	if vendorID != nil {
		q = q.Where("vendor_id = ?", *vendorID)
	}
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&txs).Error
	return txs, err
}
