package dto

import "github.com/shopspring/decimal"

type CreateStockItemRequest struct {
	ItemName     string          `json:"item_name" validate:"required"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit" validate:"required"`
	MinimumStock int             `json:"minimum_stock" validate:"gte=0"`
	MaximumStock int             `json:"maximum_stock" validate:"gte=0"`
	ReorderLevel int             `json:"reorder_level" validate:"gte=0"`
	UnitCost     decimal.Decimal `json:"unit_cost" validate:"gte=0"`
}

type StockItemResponse struct {
	ID           string          `json:"id"`
	VendorID     string          `json:"vendor_id"`
	ItemName     string          `json:"item_name"`
	Unit         string          `json:"unit"`
	CurrentStock int             `json:"current_stock"`
	MinimumStock int             `json:"minimum_stock"`
	MaximumStock int             `json:"maximum_stock"`
	ReorderLevel int             `json:"reorder_level"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Status       string          `json:"status"` // critical | low | healthy
}

// CreateStockTransactionRequest records an inventory movement. Quantity must
// be positive for in/out; adjustments accept a signed delta and reject zero.
type CreateStockTransactionRequest struct {
	StockID         string          `json:"stock_id" validate:"required,uuid"`
	Type            string          `json:"transaction_type" validate:"required,oneof=in out adjustment"`
	Quantity        int             `json:"quantity" validate:"required"`
	UnitCost        decimal.Decimal `json:"unit_cost" validate:"gte=0"`
	ReferenceNumber *string         `json:"reference_number"`
	Notes           string          `json:"notes"`
}

type StockTransactionResponse struct {
	ID              string          `json:"id"`
	StockID         string          `json:"stock_id"`
	ItemName        string          `json:"item_name,omitempty"`
	Type            string          `json:"transaction_type"`
	Quantity        int             `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	ReferenceNumber *string         `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type StockAlertResponse struct {
	StockItemResponse
	Deficit int `json:"deficit"` // units below reorder level
}
