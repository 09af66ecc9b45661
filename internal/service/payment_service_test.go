package service

import (
	"context"
	"testing"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPaymentSvc() (PaymentService, *stubPaymentRepo, *stubInvoiceRepo) {
	paymentRepo := &stubPaymentRepo{}
	invoiceRepo := newStubInvoiceRepo()
	svc := NewPaymentService(paymentRepo, invoiceRepo)
	return svc, paymentRepo, invoiceRepo
}

func seedInvoice(repo *stubInvoiceRepo, total float64) *model.Invoice {
	inv := &model.Invoice{
		ID:     uuid.New(),
		Total:  decimal.NewFromFloat(total),
		Status: "pending",
	}
	repo.invoices[inv.ID] = inv
	return inv
}

func TestCreatePayment_PartialKeepsPending(t *testing.T) {
	svc, _, invoiceRepo := buildPaymentSvc()
	inv := seedInvoice(invoiceRepo, 1000)

	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID:     inv.ID.String(),
		Amount:        decimal.NewFromInt(400),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", invoiceRepo.invoices[inv.ID].Status)
}

func TestCreatePayment_FullSumFlipsToPaid(t *testing.T) {
	svc, _, invoiceRepo := buildPaymentSvc()
	inv := seedInvoice(invoiceRepo, 1000)

	for _, amount := range []int64{400, 600} {
		_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
			InvoiceID:     inv.ID.String(),
			Amount:        decimal.NewFromInt(amount),
			PaymentMethod: "transfer",
		})
		require.NoError(t, err)
	}
	assert.Equal(t, "paid", invoiceRepo.invoices[inv.ID].Status)
}

func TestCreatePayment_NonPositiveAmountRejected(t *testing.T) {
	svc, paymentRepo, invoiceRepo := buildPaymentSvc()
	inv := seedInvoice(invoiceRepo, 100)

	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID:     inv.ID.String(),
		Amount:        decimal.Zero,
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "positive")
	assert.Empty(t, paymentRepo.payments)
}

func TestCreatePayment_UnknownInvoice(t *testing.T) {
	svc, _, _ := buildPaymentSvc()
	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID:     uuid.NewString(),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "invoice not found")
}
