package repository

import (
	"context"

	"github.com/mturke1996/al-fahed/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRepository defines CRUD operations for Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	List(ctx context.Context) ([]model.Invoice, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type invoiceRepository struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// List returns every invoice, newest first, with its sale and customer joined.
func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Sale").
		Preload("Customer").
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Sale.Items.Product").
		Preload("Customer").
		First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Invoice{}).Count(&n).Error
	return n, err
}
