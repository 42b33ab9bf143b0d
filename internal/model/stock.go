package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockItem is an inventory line held by one vendor.
// ReorderLevel defines the low-stock threshold; it is independent of
// MinimumStock, which is informational only.
type StockItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendorID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName     string          `gorm:"index;not null"`
	Description  string          `gorm:"not null"`
	Unit         string          `gorm:"not null"` // kg, liter, piece, ...
	CurrentStock int             `gorm:"not null;default:0"`
	MinimumStock int             `gorm:"not null;default:10"`
	MaximumStock int             `gorm:"not null;default:1000"`
	ReorderLevel int             `gorm:"not null;default:20"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Vendor *Vendor `gorm:"foreignKey:VendorID"`
}
