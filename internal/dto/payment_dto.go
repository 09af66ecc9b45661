package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePaymentRequest struct {
	InvoiceID     string          `json:"invoiceId"     validate:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"        validate:"required"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=cash card transfer"`
	PaymentDate   *string         `json:"paymentDate"   validate:"omitempty,datetime=2006-01-02"`
	Reference     *string         `json:"reference"`
	Notes         *string         `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoiceId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentDate   string          `json:"paymentDate"`
	Reference     *string         `json:"reference"`
	Notes         *string         `json:"notes"`
	CreatedAt     string          `json:"createdAt"`
}
