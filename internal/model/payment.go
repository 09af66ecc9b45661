package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records money received against an Invoice.
// PaymentMethod: "cash" | "card" | "transfer"
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
	Reference     *string
	Notes         *string
	CreatedAt     time.Time

	Invoice *Invoice `gorm:"foreignKey:InvoiceID"`
}
