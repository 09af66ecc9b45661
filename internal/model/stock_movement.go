package model

import (
	"time"

	"github.com/google/uuid"
)

// StockMovement is an immutable entry in the inventory ledger.
// Type: "in" | "out" | "adjustment". Quantity is positive for "in",
// positive-meaning-removed for "out", and signed for "adjustment".
// Movements are never modified or deleted.
type StockMovement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity  int       `gorm:"not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Reference *string
	Notes     *string
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName keeps the store's historical table name for the movement ledger.
func (StockMovement) TableName() string { return "inventory" }
