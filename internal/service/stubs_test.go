package service

// Shared in-memory repository stubs for service unit tests. Each stub can be
// flipped to fail to exercise degradation paths.

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raghav2811/VendorConnect/internal/model"
	"github.com/raghav2811/VendorConnect/internal/repository"
)

var errStub = errors.New("stub failure")

// ── Orders ───────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders   []model.Order
	items    []model.OrderItem
	statuses map[uuid.UUID]string
	fail     bool
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{statuses: make(map[uuid.UUID]string)}
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

func (r *stubOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.Order) error {
	if r.fail {
		return errStub
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return &r.orders[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	r.statuses[id] = status
	return nil
}

func (r *stubOrderRepo) List(_ context.Context, vendorID *uuid.UUID) ([]model.Order, error) {
	if r.fail {
		return nil, errStub
	}
	if vendorID == nil {
		return r.orders, nil
	}
	var out []model.Order
	for _, o := range r.orders {
		if o.VendorID == *vendorID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByBuyer(_ context.Context, buyerID uuid.UUID) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListItems(_ context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error) {
	if r.fail {
		return nil, errStub
	}
	wanted := make(map[uuid.UUID]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	var out []model.OrderItem
	for _, it := range r.items {
		if wanted[it.OrderID] {
			out = append(out, it)
		}
	}
	return out, nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── Stock ────────────────────────────────────────────────────────────────────

type stubStockRepo struct {
	items map[uuid.UUID]*model.StockItem
	txs   []model.StockTransaction
	fail  bool
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{items: make(map[uuid.UUID]*model.StockItem)}
}

func (r *stubStockRepo) DB() *gorm.DB { return nil }

func (r *stubStockRepo) Create(_ context.Context, s *model.StockItem) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.items[s.ID] = s
	return nil
}

func (r *stubStockRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockItem, error) {
	return r.findItem(id)
}

func (r *stubStockRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.StockItem, error) {
	return r.findItem(id)
}

func (r *stubStockRepo) findItem(id uuid.UUID) (*model.StockItem, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *s
	return &copied, nil
}

func (r *stubStockRepo) List(_ context.Context, vendorID *uuid.UUID) ([]model.StockItem, error) {
	if r.fail {
		return nil, errStub
	}
	var out []model.StockItem
	for _, s := range r.items {
		if vendorID == nil || s.VendorID == *vendorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStockRepo) ListLow(_ context.Context, vendorID *uuid.UUID) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, s := range r.items {
		if vendorID != nil && s.VendorID != *vendorID {
			continue
		}
		if s.CurrentStock <= s.ReorderLevel {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStockRepo) AdjustStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	s, ok := r.items[id]
	if !ok {
		return errors.New("not found")
	}
	s.CurrentStock += delta
	return nil
}

func (r *stubStockRepo) CreateTransactionTx(_ *gorm.DB, t *model.StockTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	r.txs = append(r.txs, *t)
	return nil
}

func (r *stubStockRepo) ListTransactions(_ context.Context, vendorID *uuid.UUID, since *time.Time, limit int) ([]model.StockTransaction, error) {
	if r.fail {
		return nil, errStub
	}
	var out []model.StockTransaction
	for _, t := range r.txs {
		if vendorID != nil && t.VendorID != *vendorID {
			continue
		}
		if since != nil && t.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, t)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repository.StockRepository = (*stubStockRepo)(nil)

// ── Menu ─────────────────────────────────────────────────────────────────────

type stubMenuRepo struct {
	items map[uuid.UUID]*model.MenuItem
	fail  bool
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{items: make(map[uuid.UUID]*model.MenuItem)}
}

func (r *stubMenuRepo) add(m model.MenuItem) uuid.UUID {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items[m.ID] = &m
	return m.ID
}

func (r *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MenuItem, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return m, nil
}

func (r *stubMenuRepo) List(_ context.Context, vendorID *uuid.UUID) ([]model.MenuItem, error) {
	if r.fail {
		return nil, errStub
	}
	var out []model.MenuItem
	for _, m := range r.items {
		if vendorID == nil || m.VendorID == *vendorID {
			out = append(out, *m)
		}
	}
	return out, nil
}

var _ repository.MenuRepository = (*stubMenuRepo)(nil)

// ── Vendors ──────────────────────────────────────────────────────────────────

type stubVendorRepo struct {
	vendors map[uuid.UUID]*model.Vendor
	fail    bool
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{vendors: make(map[uuid.UUID]*model.Vendor)}
}

func (r *stubVendorRepo) add(v model.Vendor) uuid.UUID {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendors[v.ID] = &v
	return v.ID
}

func (r *stubVendorRepo) Create(_ context.Context, v *model.Vendor) error {
	r.add(*v)
	return nil
}

func (r *stubVendorRepo) CreateTx(_ *gorm.DB, v *model.Vendor) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	copied := *v
	r.vendors[v.ID] = &copied
	return nil
}

func (r *stubVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubVendorRepo) List(_ context.Context) ([]model.Vendor, error) {
	if r.fail {
		return nil, errStub
	}
	var out []model.Vendor
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVendorRepo) ListApproved(_ context.Context) ([]model.Vendor, error) {
	var out []model.Vendor
	for _, v := range r.vendors {
		if v.IsApproved && v.IsActive {
			out = append(out, *v)
		}
	}
	return out, nil
}

var _ repository.VendorRepository = (*stubVendorRepo)(nil)

// ── Users ────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users      map[uuid.UUID]*model.User
	byUsername map[string]uuid.UUID
	lastLogin  map[uuid.UUID]bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:      make(map[uuid.UUID]*model.User),
		byUsername: make(map[string]uuid.UUID),
		lastLogin:  make(map[uuid.UUID]bool),
	}
}

func (r *stubUserRepo) DB() *gorm.DB { return nil }

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if _, exists := r.byUsername[u.Username]; exists {
		return errors.New("duplicate username")
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	copied := *u
	r.users[u.ID] = &copied
	r.byUsername[u.Username] = u.ID
	return nil
}

func (r *stubUserRepo) CreateTx(_ *gorm.DB, u *model.User) error {
	return r.Create(context.Background(), u)
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	id, ok := r.byUsername[username]
	if !ok {
		return nil, errors.New("not found")
	}
	return r.users[id], nil
}

func (r *stubUserRepo) List(_ context.Context, includeInactive bool) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if !includeInactive && !u.IsActive {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	r.lastLogin[id] = true
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.IsActive = false
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)
