package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string           `json:"name"          validate:"required,min=1,max=200"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"         validate:"min=0"`
	Stock         int              `json:"stock"         validate:"min=0"`
	CategoryID    *string          `json:"categoryId"    validate:"omitempty,uuid"`
	SKU           *string          `json:"sku"`
	Barcode       *string          `json:"barcode"`
	Weight        *float64         `json:"weight"`
	Dimensions    *string          `json:"dimensions"`
	Supplier      *string          `json:"supplier"`
	CostPrice     *decimal.Decimal `json:"costPrice"`
	MinStockLevel *int             `json:"minStockLevel" validate:"omitempty,min=0"`
	MaxStockLevel *int             `json:"maxStockLevel" validate:"omitempty,min=0"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"          validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int             `json:"stock"         validate:"omitempty,min=0"`
	CategoryID    *string          `json:"categoryId"    validate:"omitempty,uuid"`
	SKU           *string          `json:"sku"`
	Barcode       *string          `json:"barcode"`
	Weight        *float64         `json:"weight"`
	Dimensions    *string          `json:"dimensions"`
	Supplier      *string          `json:"supplier"`
	CostPrice     *decimal.Decimal `json:"costPrice"`
	MinStockLevel *int             `json:"minStockLevel" validate:"omitempty,min=0"`
	MaxStockLevel *int             `json:"maxStockLevel" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         decimal.Decimal   `json:"price"`
	Stock         int               `json:"stock"`
	CategoryID    *string           `json:"categoryId"`
	Category      *CategoryResponse `json:"category,omitempty"`
	SKU           *string           `json:"sku"`
	Barcode       *string           `json:"barcode"`
	Weight        *float64          `json:"weight"`
	Dimensions    *string           `json:"dimensions"`
	Supplier      *string           `json:"supplier"`
	CostPrice     *decimal.Decimal  `json:"costPrice"`
	MinStockLevel *int              `json:"minStockLevel"`
	MaxStockLevel *int              `json:"maxStockLevel"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}
