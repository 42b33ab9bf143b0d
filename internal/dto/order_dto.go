package dto

import "github.com/shopspring/decimal"

type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	VendorID        string             `json:"vendor_id" validate:"required,uuid"`
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress *string            `json:"delivery_address"`
	Notes           string             `json:"notes"`
}

type OrderItemResponse struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	VendorID        string              `json:"vendor_id"`
	VendorName      string              `json:"vendor_name,omitempty"`
	BuyerID         string              `json:"buyer_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	OrderDate       string              `json:"order_date"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready delivered cancelled"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int             `json:"total"`
}
