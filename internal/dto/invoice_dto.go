package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateInvoiceRequest struct {
	SaleID   string           `json:"saleId"   validate:"required,uuid"`
	Discount decimal.Decimal  `json:"discount"`
	TaxRate  *decimal.Decimal `json:"taxRate"` // percent; nil = invoice form default (5)
	DueDate  string           `json:"dueDate"  validate:"required,datetime=2006-01-02"`
	Notes    *string          `json:"notes"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid pending overdue"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InvoiceResponse struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	SaleID        string            `json:"saleId"`
	Sale          *SaleResponse     `json:"sale,omitempty"`
	CustomerID    string            `json:"customerId"`
	Customer      *CustomerResponse `json:"customer,omitempty"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status"`
	DueDate       string            `json:"dueDate"`
	Notes         *string           `json:"notes"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}
