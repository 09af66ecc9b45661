package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"
	"github.com/mturke1996/al-fahed/internal/repository"
	"github.com/mturke1996/al-fahed/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceService creates billing documents from sales.
type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	List(ctx context.Context) ([]dto.InvoiceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	repo       repository.InvoiceRepository
	saleRepo   repository.SaleRepository
	dispatcher *worker.Dispatcher
}

func NewInvoiceService(
	repo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	dispatcher *worker.Dispatcher,
) InvoiceService {
	return &invoiceService{repo: repo, saleRepo: saleRepo, dispatcher: dispatcher}
}

// Create builds an invoice from an existing sale.
// Subtotal is the sale's pre-discount total; Total = Subtotal + Tax - Discount.
// The invoice number follows the panel's historical format INV-<unix-millis>.
func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	saleID, err := uuid.Parse(req.SaleID)
	if err != nil {
		return nil, fmt.Errorf("invalid saleId: %w", err)
	}
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, errors.New("sale not found")
	}
	if req.Discount.IsNegative() {
		return nil, errors.New("discount must not be negative")
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid dueDate: %w", err)
	}

	taxRate := DefaultInvoiceTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	subtotal := sale.Total
	tax := subtotal.Mul(taxRate).Div(hundred)
	total := subtotal.Add(tax).Sub(req.Discount)

	inv := &model.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%d", time.Now().UnixMilli()),
		SaleID:        sale.ID,
		CustomerID:    sale.CustomerID,
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      req.Discount,
		Total:         total,
		Status:        "pending",
		DueDate:       dueDate,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	// Render the printable PDF asynchronously (best-effort, fire & forget)
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueInvoicePDF(ctx, worker.InvoicePDFPayload{InvoiceID: inv.ID.String()})
	}

	resp := mapInvoice(*inv)
	return &resp, nil
}

func (s *invoiceService) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, mapInvoice(inv))
	}
	return result, nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invoice not found")
		}
		return nil, err
	}
	resp := mapInvoice(*inv)
	return &resp, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("invoice not found")
		}
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("invoice not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
