package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/sangkips/bookstore-api/pkg/apperror"
	"github.com/sangkips/bookstore-api/pkg/pagination"
)

// OrderService handles order-related business logic
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListOrders returns a page of orders matching params
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return pagination.NewPaginatedResult(orders,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// GetOrder returns an order with its line items and books
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus marks an order completed or pending. Stock moves only
// when the flag actually changes.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, completed bool) (*entity.Order, error) {
	order, err := s.orderRepo.SetCompletion(ctx, id, completed, false)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}

	zerolog.Ctx(ctx).Info().
		Str("order_id", id.String()).
		Bool("completed", completed).
		Msg("order status updated")
	return order, nil
}

// ConfirmReceipt lets the buyer confirm delivery, which completes the order.
// The email must match the one on the order.
func (s *OrderService) ConfirmReceipt(ctx context.Context, id uuid.UUID, email string) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}

	if !strings.EqualFold(strings.TrimSpace(email), order.Email) {
		return nil, apperror.ErrEmailMismatch
	}
	if order.BuyerConfirmed {
		return nil, apperror.ErrReceiptConfirmed
	}

	updated, err := s.orderRepo.SetCompletion(ctx, id, true, true)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm receipt: %w", err)
	}
	if updated == nil {
		return nil, apperror.ErrOrderNotFound
	}

	zerolog.Ctx(ctx).Info().Str("order_id", id.String()).Msg("buyer confirmed receipt")
	return updated, nil
}
