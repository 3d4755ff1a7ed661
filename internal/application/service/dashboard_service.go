package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sangkips/bookstore-api/internal/domain/analytics"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/sangkips/bookstore-api/pkg/apperror"
	"golang.org/x/sync/errgroup"
)

// ReportCache memoizes sales reports by key
type ReportCache interface {
	Get(key string) (*analytics.SalesReport, bool)
	Set(key string, report *analytics.SalesReport)
}

// DashboardService builds the admin sales reports
type DashboardService struct {
	orderRepo       repository.OrderRepository
	bookRepo        repository.BookRepository
	engine          *analytics.Engine
	cache           ReportCache
	bestSellerLimit int
}

// NewDashboardService creates a new dashboard service. cache may be nil.
func NewDashboardService(
	orderRepo repository.OrderRepository,
	bookRepo repository.BookRepository,
	engine *analytics.Engine,
	cache ReportCache,
	bestSellerLimit int,
) *DashboardService {
	if bestSellerLimit <= 0 {
		bestSellerLimit = repository.DefaultBestSellerLimit
	}
	return &DashboardService{
		orderRepo:       orderRepo,
		bookRepo:        bookRepo,
		engine:          engine,
		cache:           cache,
		bestSellerLimit: bestSellerLimit,
	}
}

// ResolveRange builds a report range from optional "YYYY-MM-DD" bounds.
// Omitted bounds keep the trailing default window. Supplied bounds are
// applied start first, then end, so the range never inverts.
func (s *DashboardService) ResolveRange(start, end string) (analytics.DateRange, error) {
	rng := s.engine.DefaultRange()

	if start = strings.TrimSpace(start); start != "" {
		d, err := analytics.ParseDate(start)
		if err != nil {
			return rng, apperror.NewInvalidDateError("start", err)
		}
		rng.SetStart(d)
	}

	if end = strings.TrimSpace(end); end != "" {
		d, err := analytics.ParseDate(end)
		if err != nil {
			return rng, apperror.NewInvalidDateError("end", err)
		}
		rng.SetEnd(d)
	}

	return rng, nil
}

// GetSalesReport returns the daily series, summary, best sellers and order
// stats for rng
func (s *DashboardService) GetSalesReport(ctx context.Context, rng analytics.DateRange) (*analytics.SalesReport, error) {
	log := zerolog.Ctx(ctx)

	version, err := s.orderRepo.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders version: %w", err)
	}

	key := reportKey(version, rng)
	if s.cache != nil {
		if report, ok := s.cache.Get(key); ok {
			log.Debug().Str("cache_key", key).Msg("sales report served from cache")
			return report, nil
		}
	}

	var (
		orders      []entity.Order
		bestSellers []repository.BestSellerResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orderRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bestSellers, err = s.bookRepo.ListBestSellers(gctx, s.bestSellerLimit)
		if err != nil {
			return fmt.Errorf("failed to load best sellers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := s.engine.Report(ToAnalyticsOrders(orders), ToBestSellers(bestSellers), rng)

	log.Debug().
		Str("start", rng.Start().String()).
		Str("end", rng.End().String()).
		Int("orders", len(orders)).
		Int("days", len(report.Daily)).
		Msg("sales report built")

	if s.cache != nil {
		s.cache.Set(key, report)
	}
	return report, nil
}

// GetOrderStats returns the completion counters over all orders
func (s *DashboardService) GetOrderStats(ctx context.Context) (*analytics.OrderStats, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	stats := analytics.ComputeOrderStats(ToAnalyticsOrders(orders))
	return &stats, nil
}

func reportKey(version string, rng analytics.DateRange) string {
	return version + "|" + rng.Start().String() + "|" + rng.End().String()
}

// ToAnalyticsOrders maps stored orders to the engine's order view
func ToAnalyticsOrders(orders []entity.Order) []analytics.Order {
	result := make([]analytics.Order, 0, len(orders))
	for _, o := range orders {
		items := make([]analytics.LineItem, 0, len(o.Products))
		for _, p := range o.Products {
			items = append(items, analytics.LineItem{
				ProductRef: p.BookID.String(),
				Quantity:   p.Quantity,
				Price:      p.Price,
			})
		}
		result = append(result, analytics.Order{
			ID:         o.ID.String(),
			Completed:  o.Completed,
			TotalPrice: o.TotalPrice,
			UpdatedAt:  o.UpdatedAt,
			Products:   items,
		})
	}
	return result
}

// ToBestSellers maps best-seller query rows to the engine's input
func ToBestSellers(rows []repository.BestSellerResult) []analytics.BestSeller {
	result := make([]analytics.BestSeller, 0, len(rows))
	for _, r := range rows {
		result = append(result, analytics.BestSeller{
			Title:         r.Title,
			TotalQuantity: r.TotalQuantity,
			OrderCount:    r.OrderCount,
			NewPrice:      r.NewPrice,
		})
	}
	return result
}
