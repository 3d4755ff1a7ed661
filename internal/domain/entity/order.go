package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a customer's book order
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Email           string          `gorm:"size:255;not null;index" json:"email"`
	ShippingAddress string          `gorm:"type:text;not null" json:"shipping_address"`
	PhoneNumber     string          `gorm:"size:50;not null" json:"phone_number"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_price"`
	BuyerConfirmed  bool            `gorm:"default:false" json:"buyer_confirmed"`
	Completed       bool            `gorm:"default:false;index" json:"completed"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	Products []OrderProduct `gorm:"foreignKey:OrderID" json:"products,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ItemCount returns the number of books on the order
func (o *Order) ItemCount() int {
	count := 0
	for _, p := range o.Products {
		count += p.Quantity
	}
	return count
}

// OrderProduct is a line item on an order
type OrderProduct struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	BookID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"book_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
	Book  *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order line
func (op *OrderProduct) BeforeCreate(tx *gorm.DB) error {
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderProduct model
func (OrderProduct) TableName() string {
	return "order_products"
}
