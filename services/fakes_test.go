package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Mad-mazz/grace-burger/models"
	"github.com/Mad-mazz/grace-burger/repositories"
)

// fakeInventoryRepo is an in-memory InventoryRepositoryInterface. Stock
// mutations can be told to fail per item id to exercise the compensation
// paths.
type fakeInventoryRepo struct {
	items         map[string]*models.InventoryItem
	failDecrement map[string]bool
	failIncrement map[string]bool
}

func newFakeInventoryRepo(items ...models.InventoryItem) *fakeInventoryRepo {
	repo := &fakeInventoryRepo{
		items:         map[string]*models.InventoryItem{},
		failDecrement: map[string]bool{},
		failIncrement: map[string]bool{},
	}
	for i := range items {
		item := items[i]
		if item.Item_id == "" {
			item.Item_id = fmt.Sprintf("inv-%d", i+1)
		}
		if item.NameKey == "" {
			item.NameKey = models.CanonicalName(item.Name)
		}
		repo.items[item.Item_id] = &item
	}
	return repo
}

func (r *fakeInventoryRepo) idOf(name string) string {
	key := models.CanonicalName(name)
	for id, item := range r.items {
		if item.NameKey == key {
			return id
		}
	}
	return ""
}

func (r *fakeInventoryRepo) stockOf(name string) int {
	if id := r.idOf(name); id != "" {
		return r.items[id].Stock
	}
	return -1
}

func (r *fakeInventoryRepo) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *fakeInventoryRepo) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeInventoryRepo) GetByNameKey(ctx context.Context, nameKey string) (*models.InventoryItem, error) {
	for _, item := range r.items {
		if item.NameKey == nameKey {
			copied := *item
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	copied := *item
	r.items[item.Item_id] = &copied
	return nil
}

func (r *fakeInventoryRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	item, ok := r.items[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		item.Name = name
	}
	if key, ok := fields["name_key"].(string); ok {
		item.NameKey = key
	}
	if stock, ok := fields["stock"].(int); ok {
		item.Stock = stock
	}
	item.Updated_at = time.Now()
	return nil
}

func (r *fakeInventoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeInventoryRepo) IncrementStock(ctx context.Context, id string, delta int) error {
	item, ok := r.items[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if delta < 0 && r.failDecrement[id] {
		return fmt.Errorf("simulated decrement failure for %s", item.Name)
	}
	if delta > 0 && r.failIncrement[id] {
		return fmt.Errorf("simulated increment failure for %s", item.Name)
	}
	item.Stock += delta
	return nil
}

func (r *fakeInventoryRepo) Watch(ctx context.Context) (<-chan []models.InventoryItem, func(), error) {
	ch := make(chan []models.InventoryItem)
	close(ch)
	return ch, func() {}, nil
}

// fakeOrderRepo is an in-memory OrderRepositoryInterface.
type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func newFakeOrderRepo(orders ...models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[string]*models.Order{}}
	for i := range orders {
		order := orders[i]
		repo.orders[order.Order_id] = &order
	}
	return repo
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	copied := *order
	r.orders[order.Order_id] = &copied
	return nil
}

func (r *fakeOrderRepo) GetAll(ctx context.Context, page, recordPerPage int) ([]models.Order, int64, error) {
	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Order_id < orders[j].Order_id })
	return orders, int64(len(orders)), nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetByUserID(ctx context.Context, userID string, page, recordPerPage int) ([]models.Order, int64, error) {
	orders := []models.Order{}
	for _, order := range r.orders {
		if order.User_id == userID {
			orders = append(orders, *order)
		}
	}
	return orders, int64(len(orders)), nil
}

func (r *fakeOrderRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	order, ok := r.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "status":
			order.Status = value.(string)
		case "return_status":
			order.ReturnStatus = value.(string)
		case "return_reason":
			order.ReturnReason = value.(string)
		case "return_requested_by":
			order.ReturnRequestedBy = value.(string)
		case "return_requested_at":
			t := value.(time.Time)
			order.ReturnRequestedAt = &t
		case "return_resolved_at":
			t := value.(time.Time)
			order.ReturnResolvedAt = &t
		case "returned":
			order.Returned = value.(bool)
		}
	}
	order.Updated_at = time.Now()
	return nil
}

func (r *fakeOrderRepo) Watch(ctx context.Context) (<-chan []models.Order, func(), error) {
	ch := make(chan []models.Order)
	close(ch)
	return ch, func() {}, nil
}

// fakeTransactor either runs the callback directly or reports that the
// deployment has no transaction support.
type fakeTransactor struct {
	unsupported bool
	calls       int
}

func (t *fakeTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if t.unsupported {
		return repositories.ErrTransactionsUnsupported
	}
	return fn(ctx)
}
