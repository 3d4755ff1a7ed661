package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	domainRepo "github.com/sangkips/bookstore-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Products").
		Order("updated_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(emailEquals(params.Email), completedEquals(params.Completed))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(paginate(params.Pagination), newestFirst("created_at", params.SortOrder)).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) GetWithProducts(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Products.Book").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) SetCompletion(ctx context.Context, id uuid.UUID, completed, buyerConfirmed bool) (*entity.Order, error) {
	var order entity.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Products").
			First(&order, "id = ?", id).Error; err != nil {
			return err
		}

		// re-saving the same state must not touch updated_at, the daily series keys on it
		if order.Completed == completed && (!buyerConfirmed || order.BuyerConfirmed) {
			return nil
		}

		if order.Completed != completed {
			for _, p := range order.Products {
				if err := moveStock(tx, p.BookID, p.Quantity, completed); err != nil {
					return err
				}
			}
		}

		updates := map[string]interface{}{
			"completed":  completed,
			"updated_at": time.Now(),
		}
		if buyerConfirmed {
			updates["buyer_confirmed"] = true
		}
		if err := tx.Model(&entity.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			return err
		}

		order.Completed = completed
		order.BuyerConfirmed = order.BuyerConfirmed || buyerConfirmed
		order.UpdatedAt = updates["updated_at"].(time.Time)
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// moveStock shifts quantity between a book's stock and its sold count.
// Neither column goes below zero.
func moveStock(tx *gorm.DB, bookID uuid.UUID, quantity int, sold bool) error {
	if quantity <= 0 {
		return nil
	}

	updates := map[string]interface{}{
		"stock":         gorm.Expr("GREATEST(stock - ?, 0)", quantity),
		"sold_quantity": gorm.Expr("sold_quantity + ?", quantity),
	}
	if !sold {
		updates = map[string]interface{}{
			"stock":         gorm.Expr("stock + ?", quantity),
			"sold_quantity": gorm.Expr("GREATEST(sold_quantity - ?, 0)", quantity),
		}
	}

	return tx.Model(&entity.Book{}).Where("id = ?", bookID).Updates(updates).Error
}

type orderVersion struct {
	Count          int64
	UpdatedAt      *time.Time
	BooksUpdatedAt *time.Time
}

func unixNano(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixNano()
}

func (r *orderRepository) Version(ctx context.Context) (string, error) {
	var v orderVersion
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders) AS count,
			(SELECT MAX(updated_at) FROM orders) AS updated_at,
			(SELECT GREATEST(MAX(updated_at), MAX(deleted_at)) FROM books) AS books_updated_at
	`).Scan(&v).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d:%d:%d", v.Count, unixNano(v.UpdatedAt), unixNano(v.BooksUpdatedAt)), nil
}
