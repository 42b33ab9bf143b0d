package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock transaction types.
const (
	TxIn         = "in"
	TxOut        = "out"
	TxAdjustment = "adjustment"
)

// StockTransaction records every inventory movement for a stock item.
// Quantity is a magnitude for "in" and "out"; adjustments carry a signed
// delta (negative means shrinkage).
type StockTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StockID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type            string          `gorm:"type:varchar(20);not null"` // in | out | adjustment
	Quantity        int             `gorm:"not null"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalCost       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ReferenceNumber *string
	Notes           string
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time `gorm:"index"`

	Stock *StockItem `gorm:"foreignKey:StockID"`
}
