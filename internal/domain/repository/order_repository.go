package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// ListAll returns every order with its products, the input of the sales reports
	ListAll(ctx context.Context) ([]entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	GetWithProducts(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// SetCompletion changes the completion flag and, on a transition, moves
	// stock and sold quantity of every ordered book in the same transaction.
	// buyerConfirmed=true additionally marks the receipt as confirmed.
	// Re-saving the current state writes nothing and keeps updated_at.
	// Returns (nil, nil) when the order does not exist.
	SetCompletion(ctx context.Context, id uuid.UUID, completed, buyerConfirmed bool) (*entity.Order, error)
	// Version fingerprints the report inputs; it changes whenever an order is
	// added, removed or updated, or a book is edited or soft deleted.
	Version(ctx context.Context) (string, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Email      string
	Completed  *bool
	SortOrder  string
}
