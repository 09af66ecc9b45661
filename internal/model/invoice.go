package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is the billing document generated from a Sale.
// Status: "paid" | "pending" | "overdue"
// Total = Subtotal + Tax − Discount.
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceNumber string          `gorm:"uniqueIndex;not null;column:invoice_number"`
	SaleID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	DueDate       time.Time       `gorm:"not null"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Sale     *Sale     `gorm:"foreignKey:SaleID"`
	Customer *Customer `gorm:"foreignKey:CustomerID"`
}
