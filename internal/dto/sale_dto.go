package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
	// Price overrides the catalog price when set (the panel allows per-line
	// custom pricing); nil means charge the current product price.
	Price *decimal.Decimal `json:"price"`
}

type CreateSaleRequest struct {
	CustomerID    string            `json:"customerId"    validate:"required,uuid"`
	Items         []SaleItemRequest `json:"items"         validate:"required,min=1,dive"`
	Discount      decimal.Decimal   `json:"discount"`
	TaxRate       *decimal.Decimal  `json:"taxRate"` // percent; nil = sales default (15)
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=cash card transfer"`
	Status        string            `json:"status"        validate:"omitempty,oneof=pending completed cancelled"`
	Notes         *string           `json:"notes"`
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ID        string           `json:"id"`
	SaleID    string           `json:"saleId"`
	ProductID string           `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Total     decimal.Decimal  `json:"total"`
	CreatedAt string           `json:"createdAt"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customerId"`
	Customer      *CustomerResponse  `json:"customer,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	Discount      decimal.Decimal    `json:"discount"`
	FinalTotal    decimal.Decimal    `json:"finalTotal"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	Notes         *string            `json:"notes"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     string             `json:"createdAt"`
	UpdatedAt     string             `json:"updatedAt"`
}
