package dto

import "github.com/shopspring/decimal"

type VendorResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contact_person"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	BusinessType  string  `json:"business_type"`
	Description   *string `json:"description,omitempty"`
	IsActive      bool    `json:"is_active"`
	IsApproved    bool    `json:"is_approved"`
}

type MenuItemResponse struct {
	ID              string          `json:"id"`
	VendorID        string          `json:"vendor_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	IsAvailable     bool            `json:"is_available"`
	PreparationTime *int            `json:"preparation_time,omitempty"`
}

// MenuPriceResponse is the public price check payload, cached in Redis.
type MenuPriceResponse struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
}
