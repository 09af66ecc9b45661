package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"
	"github.com/mturke1996/al-fahed/internal/repository"

	"github.com/google/uuid"
)

// PaymentService records money received against invoices.
type PaymentService interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]dto.PaymentResponse, error)
}

type paymentService struct {
	repo        repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

func NewPaymentService(repo repository.PaymentRepository, invoiceRepo repository.InvoiceRepository) PaymentService {
	return &paymentService{repo: repo, invoiceRepo: invoiceRepo}
}

// Create records a payment. When the paid sum reaches the invoice total the
// invoice flips to "paid".
func (s *paymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoiceId: %w", err)
	}
	inv, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, errors.New("invoice not found")
	}
	if !req.Amount.IsPositive() {
		return nil, errors.New("amount must be positive")
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate, err = time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("invalid paymentDate: %w", err)
		}
	}

	p := &model.Payment{
		InvoiceID:     invoiceID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
		Reference:     req.Reference,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	paid, err := s.repo.SumByInvoice(ctx, invoiceID)
	if err == nil && paid.GreaterThanOrEqual(inv.Total) && inv.Status != "paid" {
		if err := s.invoiceRepo.UpdateStatus(ctx, invoiceID, "paid"); err != nil {
			return nil, fmt.Errorf("marking invoice paid: %w", err)
		}
	}

	resp := mapPayment(*p)
	return &resp, nil
}

func (s *paymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]dto.PaymentResponse, error) {
	payments, err := s.repo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapPayment(p))
	}
	return result, nil
}
