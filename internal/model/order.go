package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order is a buyer purchase against a single vendor.
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber     string          `gorm:"uniqueIndex;not null"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'"`
	OrderDate       time.Time       `gorm:"index;not null"`
	DeliveryDate    *time.Time
	DeliveryAddress *string
	Notes           string
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Vendor *Vendor     `gorm:"foreignKey:VendorID"`
	Buyer  *User       `gorm:"foreignKey:BuyerID"`
	Items  []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is one line of an order.
// Invariant: TotalPrice = Quantity × UnitPrice, enforced at creation time.
type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
}
