package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/domain/analytics"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/sangkips/bookstore-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	orders  *mockOrderRepo
	books   *mockBookRepo
	cache   *memoryCache
	service *DashboardService
}

func setupDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	f := &dashboardFixture{
		orders: &mockOrderRepo{},
		books:  &mockBookRepo{},
		cache:  newMemoryCache(),
	}
	f.service = NewDashboardService(f.orders, f.books, analytics.NewEngine(time.UTC, 5), f.cache, 20)
	t.Cleanup(func() {
		f.orders.AssertExpectations(t)
		f.books.AssertExpectations(t)
	})
	return f
}

func sampleOrders() []entity.Order {
	bookID := uuid.New()
	return []entity.Order{
		{
			ID:         uuid.New(),
			Completed:  true,
			TotalPrice: decimal.RequireFromString("20.005"),
			UpdatedAt:  time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
			Products:   []entity.OrderProduct{{BookID: bookID, Quantity: 2, Price: decimal.RequireFromString("10.00")}},
		},
		{
			ID:         uuid.New(),
			Completed:  true,
			TotalPrice: decimal.RequireFromString("10"),
			UpdatedAt:  time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC),
			Products:   []entity.OrderProduct{{BookID: bookID, Quantity: 1, Price: decimal.RequireFromString("10.00")}},
		},
		{
			ID:         uuid.New(),
			Completed:  false,
			TotalPrice: decimal.RequireFromString("99"),
			UpdatedAt:  time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		},
	}
}

func mustRange(t *testing.T, start, end string) analytics.DateRange {
	t.Helper()
	s, err := analytics.ParseDate(start)
	require.NoError(t, err)
	e, err := analytics.ParseDate(end)
	require.NoError(t, err)
	rng, err := analytics.NewDateRange(s, e)
	require.NoError(t, err)
	return rng
}

func TestDashboardService_GetSalesReport(t *testing.T) {
	f := setupDashboardFixture(t)
	ctx := context.Background()

	f.orders.On("Version", mock.Anything).Return("3:100", nil)
	f.orders.On("ListAll", mock.Anything).Return(sampleOrders(), nil).Once()
	f.books.On("ListBestSellers", mock.Anything, 20).Return([]repository.BestSellerResult{
		{Title: "A", TotalQuantity: 10, NewPrice: decimal.RequireFromString("10")},
		{Title: "B", TotalQuantity: 5, NewPrice: decimal.RequireFromString("30")},
	}, nil).Once()

	report, err := f.service.GetSalesReport(ctx, mustRange(t, "2024-03-04", "2024-03-06"))
	require.NoError(t, err)

	require.Len(t, report.Daily, 3)
	assert.Equal(t, "0.00", report.Daily[0].Revenue.StringFixed(2))
	assert.Equal(t, "30.01", report.Daily[1].Revenue.StringFixed(2))
	assert.Equal(t, 3, report.Daily[1].UnitsSold)
	assert.Equal(t, "30.01", report.Summary.Revenue.StringFixed(2))
	assert.Equal(t, 3, report.Summary.UnitsSold)

	require.Len(t, report.BestSellers, 2)
	assert.Equal(t, "B", report.BestSellers[0].FullName)
	assert.Equal(t, "150.00", report.BestSellers[0].Revenue.StringFixed(2))

	assert.Equal(t, 3, report.Stats.TotalOrders)
	assert.Equal(t, 2, report.Stats.CompletedOrders)
	assert.Equal(t, 1, report.Stats.PendingOrders)

	t.Run("second call hits cache", func(t *testing.T) {
		again, err := f.service.GetSalesReport(ctx, mustRange(t, "2024-03-04", "2024-03-06"))
		require.NoError(t, err)
		assert.Same(t, report, again)
	})
}

func TestDashboardService_GetSalesReport_VersionChangeRebuilds(t *testing.T) {
	f := setupDashboardFixture(t)
	ctx := context.Background()
	rng := mustRange(t, "2024-03-05", "2024-03-05")

	f.orders.On("Version", mock.Anything).Return("1:1", nil).Once()
	f.orders.On("Version", mock.Anything).Return("2:2", nil).Once()
	f.orders.On("ListAll", mock.Anything).Return(sampleOrders(), nil).Twice()
	f.books.On("ListBestSellers", mock.Anything, 20).Return(nil, nil).Twice()

	first, err := f.service.GetSalesReport(ctx, rng)
	require.NoError(t, err)
	second, err := f.service.GetSalesReport(ctx, rng)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Len(t, f.cache.entries, 2)
}

func TestDashboardService_GetSalesReport_Errors(t *testing.T) {
	rng := mustRange(t, "2024-03-01", "2024-03-07")

	t.Run("version failure", func(t *testing.T) {
		f := setupDashboardFixture(t)
		f.orders.On("Version", mock.Anything).Return("", errors.New("db down"))

		_, err := f.service.GetSalesReport(context.Background(), rng)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("best seller failure is not cached", func(t *testing.T) {
		f := setupDashboardFixture(t)
		f.orders.On("Version", mock.Anything).Return("1:1", nil)
		f.orders.On("ListAll", mock.Anything).Return(sampleOrders(), nil)
		f.books.On("ListBestSellers", mock.Anything, 20).Return(nil, errors.New("timeout"))

		_, err := f.service.GetSalesReport(context.Background(), rng)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load best sellers")
		assert.Empty(t, f.cache.entries)
	})
}

func TestDashboardService_GetOrderStats(t *testing.T) {
	f := setupDashboardFixture(t)
	f.orders.On("ListAll", mock.Anything).Return(sampleOrders(), nil)

	stats, err := f.service.GetOrderStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.Equal(t, "30.01", stats.TotalRevenue.StringFixed(2))
	assert.InDelta(t, 0.6667, stats.CompletionRate, 0.001)
}

func TestDashboardService_ResolveRange(t *testing.T) {
	f := setupDashboardFixture(t)
	def := analytics.NewEngine(time.UTC, 5).DefaultRange()

	t.Run("defaults", func(t *testing.T) {
		rng, err := f.service.ResolveRange("", "")
		require.NoError(t, err)
		assert.Equal(t, def.Start(), rng.Start())
		assert.Equal(t, def.End(), rng.End())
		assert.Equal(t, analytics.DefaultWindowDays, rng.Days())
	})

	t.Run("explicit bounds", func(t *testing.T) {
		rng, err := f.service.ResolveRange("2024-02-01", "2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-01", rng.Start().String())
		assert.Equal(t, "2024-02-29", rng.End().String())
	})

	t.Run("start after default end collapses", func(t *testing.T) {
		future := def.End().AddDays(30)
		rng, err := f.service.ResolveRange(future.String(), "")
		require.NoError(t, err)
		assert.Equal(t, future, rng.Start())
		assert.Equal(t, future, rng.End())
	})

	t.Run("end before start collapses", func(t *testing.T) {
		rng, err := f.service.ResolveRange("2024-03-10", "2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", rng.Start().String())
		assert.Equal(t, "2024-03-01", rng.End().String())
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := f.service.ResolveRange("03/01/2024", "")
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestToAnalyticsOrders(t *testing.T) {
	bookID := uuid.New()
	orders := []entity.Order{{
		ID:         uuid.New(),
		Completed:  true,
		TotalPrice: decimal.RequireFromString("12.50"),
		Products:   []entity.OrderProduct{{BookID: bookID, Quantity: 2, Price: decimal.RequireFromString("6.25")}},
	}}

	mapped := ToAnalyticsOrders(orders)
	require.Len(t, mapped, 1)
	assert.True(t, mapped[0].UpdatedAt.IsZero())
	assert.Equal(t, bookID.String(), mapped[0].Products[0].ProductRef)
	assert.Equal(t, 2, mapped[0].Products[0].Quantity)
}
