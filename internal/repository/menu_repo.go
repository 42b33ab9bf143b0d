package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/model"
)

type MenuRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	// List returns all menu items, optionally scoped to one vendor.
	List(ctx context.Context, vendorID *uuid.UUID) ([]model.MenuItem, error)
}

type menuRepo struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepo{db: db} }

func (r *menuRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *menuRepo) List(ctx context.Context, vendorID *uuid.UUID) ([]model.MenuItem, error) {
	var items []model.MenuItem
	q := r.db.WithContext(ctx).Order("name")
	if vendorID != nil {
		q = q.Where("vendor_id = ?", *vendorID)
	}
	err := q.Find(&items).Error
	return items, err
}
