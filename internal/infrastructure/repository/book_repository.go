package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	domainRepo "github.com/sangkips/bookstore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) domainRepo.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var book entity.Book
	err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &book, err
}

func (r *bookRepository) ListBestSellers(ctx context.Context, limit int) ([]domainRepo.BestSellerResult, error) {
	if limit <= 0 {
		limit = domainRepo.DefaultBestSellerLimit
	}

	var results []domainRepo.BestSellerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.id AS book_id,
			b.title AS title,
			COALESCE(SUM(op.quantity), 0) AS total_quantity,
			COUNT(op.id) AS order_count,
			b.new_price AS new_price
		FROM order_products op
		JOIN orders o ON o.id = op.order_id
		JOIN books b ON b.id = op.book_id
		WHERE o.completed = true AND b.deleted_at IS NULL
		GROUP BY b.id, b.title, b.new_price
		ORDER BY total_quantity DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
