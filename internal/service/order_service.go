package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/repository"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, buyerID uuid.UUID, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, vendorID *uuid.UUID, status string) error
	ListVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]dto.OrderResponse, error)
	ListBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]dto.OrderResponse, error)
}

type orderService struct {
	orders  repository.OrderRepository
	menu    repository.MenuRepository
	vendors repository.VendorRepository
}

func NewOrderService(
	orders repository.OrderRepository,
	menu repository.MenuRepository,
	vendors repository.VendorRepository,
) OrderService {
	return &orderService{orders: orders, menu: menu, vendors: vendors}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// PlaceOrder resolves every requested menu item against the catalog, prices
// each line (total = quantity × unit price), and creates the order with its
// lines in one transaction. Orders can only target approved, active vendors.
func (s *orderService) PlaceOrder(ctx context.Context, buyerID uuid.UUID, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor_id: %w", err)
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, errors.New("vendor not found")
	}
	if !vendor.IsApproved || !vendor.IsActive {
		return nil, errors.New("vendor is not accepting orders")
	}

	// Resolve items and price the order before touching the DB.
	type resolvedLine struct {
		menuItemID uuid.UUID
		name       string
		quantity   int
		unitPrice  decimal.Decimal
		totalPrice decimal.Decimal
	}

	var resolved []resolvedLine
	total := decimal.Zero
	for _, line := range req.Items {
		mid, err := uuid.Parse(line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid menu_item_id: %w", err)
		}
		item, err := s.menu.FindByID(ctx, mid)
		if err != nil {
			return nil, fmt.Errorf("menu item %s not found", line.MenuItemID)
		}
		if item.VendorID != vendorID {
			return nil, fmt.Errorf("menu item %s does not belong to this vendor", item.Name)
		}
		if !item.IsAvailable {
			return nil, fmt.Errorf("menu item %s is currently unavailable", item.Name)
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
		resolved = append(resolved, resolvedLine{
			menuItemID: mid,
			name:       item.Name,
			quantity:   line.Quantity,
			unitPrice:  item.Price,
			totalPrice: lineTotal,
		})
	}

	now := time.Now().UTC()
	order := model.Order{
		OrderNumber:     newOrderNumber(now),
		VendorID:        vendorID,
		BuyerID:         buyerID,
		TotalAmount:     total,
		Status:          model.OrderPending,
		OrderDate:       now,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		CreatedBy:       buyerID,
	}
	for _, r := range resolved {
		order.Items = append(order.Items, model.OrderItem{
			MenuItemID: r.menuItemID,
			Quantity:   r.quantity,
			UnitPrice:  r.unitPrice,
			TotalPrice: r.totalPrice,
		})
	}

	txErr := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		return s.orders.Create(ctx, tx, &order)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := orderToResponse(&order)
	resp.VendorName = vendor.Name
	for i, r := range resolved {
		resp.Items[i].Name = r.name
	}
	return resp, nil
}

// UpdateStatus advances an order. A non-nil vendorID scopes the change to
// that vendor's own orders; nil means unrestricted (admin).
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, vendorID *uuid.UUID, status string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return errors.New("order not found")
	}
	if vendorID != nil && order.VendorID != *vendorID {
		return errors.New("order does not belong to this vendor")
	}
	return s.orders.UpdateStatus(ctx, id, status)
}

func (s *orderService) ListVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]dto.OrderResponse, error) {
	orders, err := s.orders.List(ctx, &vendorID)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

func (s *orderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]dto.OrderResponse, error) {
	orders, err := s.orders.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

// newOrderNumber builds a human-readable unique order reference.
func newOrderNumber(now time.Time) string {
	suffix := uuid.New().String()[:6]
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

func orderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *orderToResponse(&orders[i]))
	}
	return out
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		name := ""
		if it.MenuItem != nil {
			name = it.MenuItem.Name
		}
		items = append(items, dto.OrderItemResponse{
			MenuItemID: it.MenuItemID.String(),
			Name:       name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	resp := &dto.OrderResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		VendorID:        o.VendorID.String(),
		BuyerID:         o.BuyerID.String(),
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		OrderDate:       o.OrderDate.UTC().Format(time.RFC3339),
		DeliveryAddress: o.DeliveryAddress,
		Notes:           o.Notes,
		Items:           items,
	}
	if o.Vendor != nil {
		resp.VendorName = o.Vendor.Name
	}
	return resp
}
