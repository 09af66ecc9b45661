package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer holds billing contact data for sales and invoices.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     *string
	Phone     *string
	Address   *string
	Company   *string
	TaxNumber *string `gorm:"column:tax_number"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
