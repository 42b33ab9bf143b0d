package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/model"
)

type VendorRepository interface {
	Create(ctx context.Context, v *model.Vendor) error
	CreateTx(tx *gorm.DB, v *model.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
	ListApproved(ctx context.Context) ([]model.Vendor, error)
}

type vendorRepo struct{ db *gorm.DB }

func NewVendorRepository(db *gorm.DB) VendorRepository { return &vendorRepo{db: db} }

func (r *vendorRepo) Create(ctx context.Context, v *model.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendorRepo) CreateTx(tx *gorm.DB, v *model.Vendor) error {
	return tx.Create(v).Error
}

func (r *vendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *vendorRepo) List(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepo) ListApproved(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.WithContext(ctx).
		Where("is_approved = true AND is_active = true").
		Order("name").Find(&vendors).Error
	return vendors, err
}
