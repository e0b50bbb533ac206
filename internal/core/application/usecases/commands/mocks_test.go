package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// storedOrder builds a pending order as the repository would return it, with
// one item per given status. Item ids start at orderID*100.
func storedOrder(t *testing.T, orderID int64, statuses ...order.ItemStatus) *order.Order {
	t.Helper()

	items := make([]*order.OrderItem, 0, len(statuses))
	for i, status := range statuses {
		item, err := order.RestoreOrderItem(orderID*100+int64(i), orderID, 7, 1, status, 1)
		require.NoError(t, err)
		items = append(items, item)
	}

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(orderID, "table 4", 3, nil, order.StatusPending, createdAt, 1, items)
	require.NoError(t, err)
	return o
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) GetItem(ctx context.Context, id int64) (*order.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) UpdateItem(ctx context.Context, item *order.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockIDSequence struct{ mock.Mock }

func (m *MockIDSequence) NextID(ctx context.Context, entityType string) (int64, error) {
	args := m.Called(ctx, entityType)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) AddProduct(ctx context.Context, name string, price float64, categoryID *int64) (catalog.Product, error) {
	args := m.Called(ctx, name, price, categoryID)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockProductCatalog) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockProductCatalog) GetAllProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductCatalog) UpdateProduct(ctx context.Context, id int64, update ports.ProductUpdate) (catalog.Product, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockProductCatalog) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductCatalog) AddCategory(ctx context.Context, name string) (catalog.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(catalog.Category), args.Error(1)
}

func (m *MockProductCatalog) GetAllCategories(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockProductCatalog) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
