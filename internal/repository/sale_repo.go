package repository

import (
	"context"

	"github.com/mturke1996/al-fahed/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository persists sales together with their line items.
// Create runs inside a caller-owned transaction so that the sale, its items,
// and the stock adjustments commit or roll back as one unit.
type SaleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	List(ctx context.Context) ([]model.Sale, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	DB() *gorm.DB
}

type saleRepository struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepository{db: db} }

func (r *saleRepository) DB() *gorm.DB { return r.db }

func (r *saleRepository) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

// List returns every sale, newest first, hydrated with its customer and its
// items (each item carrying its product). Unresolvable relations hydrate as
// nil, never as an error.
func (r *saleRepository) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *saleRepository) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Sale{}).Where("id = ?", id).Update("status", status).Error
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Count(&n).Error
	return n, err
}
