package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a sellable catalog entry belonging to one vendor.
type MenuItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"index;not null"`
	Description     string          `gorm:"not null"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category        string          `gorm:"not null"`
	IsAvailable     bool            `gorm:"not null;default:true"`
	ImageURL        *string
	PreparationTime *int // minutes
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Vendor *Vendor `gorm:"foreignKey:VendorID"`
}
