package repository

import (
	"strings"

	"github.com/sangkips/bookstore-api/pkg/pagination"
	"gorm.io/gorm"
)

// emailEquals filters by buyer email, ignoring case. An empty email matches everything.
func emailEquals(email string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		email = strings.TrimSpace(email)
		if email == "" {
			return db
		}
		return db.Where("LOWER(email) = ?", strings.ToLower(email))
	}
}

func completedEquals(completed *bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if completed == nil {
			return db
		}
		return db.Where("completed = ?", *completed)
	}
}

// paginate applies LIMIT/OFFSET, clamping p into range first. A nil p uses the default page.
func paginate(p *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p == nil {
			p = pagination.DefaultPagination()
		}
		p.Validate()
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}

// newestFirst orders by column descending unless direction is "asc"
func newestFirst(column, direction string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.EqualFold(direction, "asc") {
			return db.Order(column + " ASC")
		}
		return db.Order(column + " DESC")
	}
}
