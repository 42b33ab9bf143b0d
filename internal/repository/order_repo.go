package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// List returns orders newest-first, optionally scoped to one vendor.
	List(ctx context.Context, vendorID *uuid.UUID) ([]model.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]model.Order, error)
	// ListItems returns the order lines for the given orders with their menu
	// items preloaded.
	ListItems(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error)
	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items.MenuItem").Preload("Vendor").First(&o, id).Error
	return &o, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) List(ctx context.Context, vendorID *uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	q := r.db.WithContext(ctx).Order("order_date DESC")
	if vendorID != nil {
		q = q.Where("vendor_id = ?", *vendorID)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Preload("Items.MenuItem").Preload("Vendor").
		Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListItems(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Preload("MenuItem").
		Find(&items).Error
	return items, err
}
