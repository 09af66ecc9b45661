package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a completed or pending sales order.
// PaymentMethod: "cash" | "card" | "transfer"
// Status: "pending" | "completed" | "cancelled"
// FinalTotal = Total − Discount + tax; the tax amount is applied by the
// creating flow and is not stored as its own column.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FinalTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null;column:final_total"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer *Customer  `gorm:"foreignKey:CustomerID"`
	Items    []SaleItem `gorm:"foreignKey:SaleID"`
}

// SaleItem is one product line of a Sale. Total = Price × Quantity,
// computed at creation time and stored denormalized.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
