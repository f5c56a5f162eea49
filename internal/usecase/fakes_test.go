package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the persistence contracts the
// pgx implementations provide, including the uniqueness backstop on
// table_id, so the services can be exercised without a database.

type fakeTableRepo struct {
	mu     sync.Mutex
	tables map[string]*entity.Table
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[string]*entity.Table)}
}

func (r *fakeTableRepo) Create(ctx context.Context, table *entity.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[table.TableID]; exists {
		return fmt.Errorf("create occupancy %s: %w", table.TableID, repository.ErrTableUnavailable)
	}

	copied := *table
	r.tables[table.TableID] = &copied
	return nil
}

func (r *fakeTableRepo) FindByID(ctx context.Context, tableID string) (*entity.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.tables[tableID]
	if !ok {
		return nil, nil
	}

	copied := *table
	return &copied, nil
}

func (r *fakeTableRepo) FindAll(ctx context.Context) ([]*entity.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tables []*entity.Table
	for _, table := range r.tables {
		copied := *table
		tables = append(tables, &copied)
	}
	return tables, nil
}

func (r *fakeTableRepo) MarkExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var flipped int64
	for _, table := range r.tables {
		if table.Status == entity.TableStatusActive && table.EndTime.Before(cutoff) {
			table.Status = entity.TableStatusExpired
			flipped++
		}
	}
	return flipped, nil
}

func (r *fakeTableRepo) Delete(ctx context.Context, tableID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[tableID]; !ok {
		return fmt.Errorf("delete occupancy %s: %w", tableID, repository.ErrTableNotFound)
	}

	delete(r.tables, tableID)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) CreateBatch(ctx context.Context, orders []*entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, order := range orders {
		if _, exists := r.orders[order.OrderID]; exists {
			return fmt.Errorf("insert order line %s: duplicate id", order.OrderID)
		}
	}
	for _, order := range orders {
		copied := *order
		r.orders[order.OrderID] = &copied
	}
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}

	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) FindPending(ctx context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pending []*entity.Order
	for _, order := range r.orders {
		if order.Status == entity.OrderStatusPending {
			copied := *order
			pending = append(pending, &copied)
		}
	}
	return pending, nil
}

func (r *fakeOrderRepo) FindByTableID(ctx context.Context, tableID string) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var orders []*entity.Order
	for _, order := range r.orders {
		if order.TableID == tableID {
			copied := *order
			orders = append(orders, &copied)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("update order %s: %w", orderID, repository.ErrOrderNotFound)
	}

	order.Status = status
	return nil
}

type fakeMenuRepo struct {
	mu    sync.Mutex
	items map[string]*entity.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[string]*entity.MenuItem)}
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *item
	r.items[item.Name] = &copied
	return nil
}

func (r *fakeMenuRepo) FindByName(ctx context.Context, name string) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[name]
	if !ok {
		return nil, nil
	}

	copied := *item
	return &copied, nil
}

func (r *fakeMenuRepo) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []*entity.MenuItem
	for _, item := range r.items {
		copied := *item
		items = append(items, &copied)
	}
	return items, nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; !ok {
		return fmt.Errorf("delete menu item %s: %w", name, repository.ErrMenuItemNotFound)
	}

	delete(r.items, name)
	return nil
}

type fakeStaffRepo struct{}

func (r *fakeStaffRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	return nil, nil
}

func (r *fakeStaffRepo) FindByUsername(ctx context.Context, username string) (*entity.StaffUser, error) {
	return nil, nil
}

type fakeSessionRepo struct{}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }

func (r *fakeSessionRepo) FindValid(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, token uuid.UUID) error { return nil }

// fakeQRGenerator records artifact lifecycle so tests can assert on
// creation and rollback.
type fakeQRGenerator struct {
	mu        sync.Mutex
	created   []string
	destroyed []string
	failNext  bool
}

func (g *fakeQRGenerator) Create(payloadURL, tableID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failNext {
		g.failNext = false
		return "", fmt.Errorf("encode qr code for %s: disk full", tableID)
	}

	ref := "static/qrcodes/" + tableID + ".png"
	g.created = append(g.created, ref)
	return ref, nil
}

func (g *fakeQRGenerator) Destroy(ref string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.destroyed = append(g.destroyed, ref)
	return nil
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Table:   newFakeTableRepo(),
		Order:   newFakeOrderRepo(),
		Menu:    newFakeMenuRepo(),
		Staff:   &fakeStaffRepo{},
		Session: &fakeSessionRepo{},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
