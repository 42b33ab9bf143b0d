package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghav2811/VendorConnect/internal/dto"
	"github.com/raghav2811/VendorConnect/internal/model"
)

func TestPlaceOrder(t *testing.T) {
	orders := newStubOrderRepo()
	menu := newStubMenuRepo()
	vendors := newStubVendorRepo()

	vendorID := vendors.add(model.Vendor{Name: "Thai Corner", IsApproved: true, IsActive: true})
	burgerID := menu.add(model.MenuItem{
		VendorID:    vendorID,
		Name:        "Pad Thai",
		Price:       decimal.RequireFromString("12.50"),
		IsAvailable: true,
	})
	sodaID := menu.add(model.MenuItem{
		VendorID:    vendorID,
		Name:        "Soda",
		Price:       decimal.RequireFromString("2.00"),
		IsAvailable: true,
	})

	svc := NewOrderService(orders, menu, vendors)
	buyerID := uuid.New()

	resp, err := svc.PlaceOrder(context.Background(), buyerID, dto.CreateOrderRequest{
		VendorID: vendorID.String(),
		Items: []dto.OrderLineRequest{
			{MenuItemID: burgerID.String(), Quantity: 2},
			{MenuItemID: sodaID.String(), Quantity: 3},
		},
	})
	require.NoError(t, err)

	// 2×12.50 + 3×2.00 = 31.00
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("31.00")), "total %s", resp.TotalAmount)
	assert.Equal(t, model.OrderPending, resp.Status)
	assert.True(t, strings.HasPrefix(resp.OrderNumber, "ORD-"), "order number %s", resp.OrderNumber)
	assert.Equal(t, "Thai Corner", resp.VendorName)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Pad Thai", resp.Items[0].Name)
	assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.RequireFromString("25.00")))

	// Line invariant: total = quantity × unit price.
	for _, line := range resp.Items {
		expected := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		assert.True(t, line.TotalPrice.Equal(expected))
	}

	require.Len(t, orders.orders, 1, "order persisted")
}

func TestPlaceOrderVendorNotAcceptingOrders(t *testing.T) {
	orders := newStubOrderRepo()
	menu := newStubMenuRepo()
	vendors := newStubVendorRepo()

	unapproved := vendors.add(model.Vendor{Name: "Pending Shop", IsApproved: false, IsActive: true})
	inactive := vendors.add(model.Vendor{Name: "Closed Shop", IsApproved: true, IsActive: false})

	svc := NewOrderService(orders, menu, vendors)

	for _, vendorID := range []uuid.UUID{unapproved, inactive} {
		_, err := svc.PlaceOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
			VendorID: vendorID.String(),
			Items:    []dto.OrderLineRequest{{MenuItemID: uuid.NewString(), Quantity: 1}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not accepting orders")
	}
	assert.Empty(t, orders.orders)
}

func TestPlaceOrderForeignMenuItem(t *testing.T) {
	orders := newStubOrderRepo()
	menu := newStubMenuRepo()
	vendors := newStubVendorRepo()

	vendorID := vendors.add(model.Vendor{Name: "A", IsApproved: true, IsActive: true})
	otherID := vendors.add(model.Vendor{Name: "B", IsApproved: true, IsActive: true})
	foreignItem := menu.add(model.MenuItem{VendorID: otherID, Name: "Not Yours", Price: decimal.NewFromInt(5), IsAvailable: true})

	svc := NewOrderService(orders, menu, vendors)

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		VendorID: vendorID.String(),
		Items:    []dto.OrderLineRequest{{MenuItemID: foreignItem.String(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}

func TestPlaceOrderUnavailableItem(t *testing.T) {
	orders := newStubOrderRepo()
	menu := newStubMenuRepo()
	vendors := newStubVendorRepo()

	vendorID := vendors.add(model.Vendor{Name: "A", IsApproved: true, IsActive: true})
	itemID := menu.add(model.MenuItem{VendorID: vendorID, Name: "Sold Out", Price: decimal.NewFromInt(5), IsAvailable: false})

	svc := NewOrderService(orders, menu, vendors)

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), dto.CreateOrderRequest{
		VendorID: vendorID.String(),
		Items:    []dto.OrderLineRequest{{MenuItemID: itemID.String(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestUpdateStatus(t *testing.T) {
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, newStubMenuRepo(), newStubVendorRepo())

	vendorID := uuid.New()
	id := uuid.New()
	orders.orders = append(orders.orders, model.Order{ID: id, VendorID: vendorID, Status: model.OrderPending})

	require.NoError(t, svc.UpdateStatus(context.Background(), id, &vendorID, model.OrderConfirmed))
	assert.Equal(t, model.OrderConfirmed, orders.statuses[id])

	err := svc.UpdateStatus(context.Background(), uuid.New(), &vendorID, model.OrderConfirmed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateStatusCrossVendorRejected(t *testing.T) {
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, newStubMenuRepo(), newStubVendorRepo())

	owner := uuid.New()
	id := uuid.New()
	orders.orders = append(orders.orders, model.Order{ID: id, VendorID: owner, Status: model.OrderPending})

	other := uuid.New()
	err := svc.UpdateStatus(context.Background(), id, &other, model.OrderConfirmed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
	assert.Empty(t, orders.statuses, "rejected update leaves the order untouched")

	// Unscoped (admin) callers can update any order.
	require.NoError(t, svc.UpdateStatus(context.Background(), id, nil, model.OrderConfirmed))
	assert.Equal(t, model.OrderConfirmed, orders.statuses[id])
}
