package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. CategoryID is optional; deleting a category
// leaves its products uncategorized (ON DELETE SET NULL), never orphan errors.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"index;not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	SKU         *string         `gorm:"column:sku"`
	Barcode     *string
	Weight      *float64
	Dimensions  *string
	Supplier    *string
	CostPrice   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// MinStockLevel nil means the dashboard's default threshold applies
	MinStockLevel *int
	MaxStockLevel *int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
