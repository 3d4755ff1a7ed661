package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/domain/analytics"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) ListAll(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	args := m.Called(ctx, params)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) GetWithProducts(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepo) SetCompletion(ctx context.Context, id uuid.UUID, completed, buyerConfirmed bool) (*entity.Order, error) {
	args := m.Called(ctx, id, completed, buyerConfirmed)
	order, _ := args.Get(0).(*entity.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepo) Version(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) Create(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *mockBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	args := m.Called(ctx, id)
	book, _ := args.Get(0).(*entity.Book)
	return book, args.Error(1)
}

func (m *mockBookRepo) ListBestSellers(ctx context.Context, limit int) ([]repository.BestSellerResult, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]repository.BestSellerResult)
	return rows, args.Error(1)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	args := m.Called(ctx, email)
	admin, _ := args.Get(0).(*entity.Admin)
	return admin, args.Error(1)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*entity.Admin)
	return admin, args.Error(1)
}

type memoryCache struct {
	entries map[string]*analytics.SalesReport
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*analytics.SalesReport)}
}

func (c *memoryCache) Get(key string) (*analytics.SalesReport, bool) {
	r, ok := c.entries[key]
	return r, ok
}

func (c *memoryCache) Set(key string, report *analytics.SalesReport) {
	c.entries[key] = report
}
