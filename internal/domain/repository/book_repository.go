package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultBestSellerLimit is how many books the best-seller query returns
const DefaultBestSellerLimit = 20

// BestSellerResult is a book's sales aggregated over completed orders
type BestSellerResult struct {
	BookID        uuid.UUID
	Title         string
	TotalQuantity int
	OrderCount    int
	NewPrice      decimal.Decimal
}

// BookRepository defines the interface for catalog queries
type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	// ListBestSellers returns the books with the highest sold quantity
	ListBestSellers(ctx context.Context, limit int) ([]BestSellerResult, error)
}

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
}
