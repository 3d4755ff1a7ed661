package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Book represents a catalog item
type Book struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title        string          `gorm:"size:255;not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	ISBN         string          `gorm:"size:32" json:"isbn"`
	CoverImage   string          `gorm:"size:512" json:"cover_image"`
	OldPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"old_price"`
	NewPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"new_price"`
	Stock        int             `gorm:"default:0" json:"stock"`
	SoldQuantity int             `gorm:"default:0" json:"sold_quantity"`
	Featured     bool            `gorm:"default:false" json:"featured"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new book
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Book model
func (Book) TableName() string {
	return "books"
}
