package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/application/service"
	"github.com/sangkips/bookstore-api/internal/domain/analytics"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/sangkips/bookstore-api/pkg/pagination"
)

// SalesReporter is the dashboard behaviour the handlers depend on
type SalesReporter interface {
	ResolveRange(start, end string) (analytics.DateRange, error)
	GetSalesReport(ctx context.Context, rng analytics.DateRange) (*analytics.SalesReport, error)
	GetOrderStats(ctx context.Context) (*analytics.OrderStats, error)
}

// OrderManager is the order behaviour the handlers depend on
type OrderManager interface {
	ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, completed bool) (*entity.Order, error)
	ConfirmReceipt(ctx context.Context, id uuid.UUID, email string) (*entity.Order, error)
}

// Authenticator is the login behaviour the handlers depend on
type Authenticator interface {
	Login(ctx context.Context, input *service.LoginInput) (*service.LoginOutput, error)
}

// parseID reads a UUID path parameter
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
