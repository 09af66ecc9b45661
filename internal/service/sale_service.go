package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"
	"github.com/mturke1996/al-fahed/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService registers and manages sales orders.
type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	repo         repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

func NewSaleService(
	repo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) SaleService {
	return &saleService{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Create registers a sale and its line items in one ACID transaction:
//  1. Resolve products, compute line totals and the sale totals
//  2. BEGIN TX: insert sale + items, decrement stock, append "out" movements
//  3. COMMIT, a failure anywhere rolls the whole sale back
//
// FinalTotal = (Total - Discount) + tax, where tax = (Total - Discount) * rate / 100.
// The tax amount is applied here and not stored as its own column.
func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customerId: %w", err)
	}
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, errors.New("customer not found")
	}
	if req.Discount.IsNegative() {
		return nil, errors.New("discount must not be negative")
	}

	// Resolve products and calculate totals (pre-flight, outside TX)
	type resolvedItem struct {
		productID uuid.UUID
		name      string
		price     decimal.Decimal
		quantity  int
		total     decimal.Decimal
	}

	var resolved []resolvedItem
	subtotal := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid productId: %w", err)
		}
		p, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", item.ProductID)
		}
		if p.Stock < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for %s: %d available, %d requested", p.Name, p.Stock, item.Quantity)
		}
		price := p.Price
		if item.Price != nil {
			price = *item.Price
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		resolved = append(resolved, resolvedItem{
			productID: pid,
			name:      p.Name,
			price:     price,
			quantity:  item.Quantity,
			total:     lineTotal,
		})
	}

	taxRate := DefaultSaleTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	taxable := subtotal.Sub(req.Discount)
	tax := taxable.Mul(taxRate).Div(hundred)
	finalTotal := taxable.Add(tax)

	status := req.Status
	if status == "" {
		status = "completed"
	}

	var sale model.Sale
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		sale = model.Sale{
			CustomerID:    customerID,
			Total:         subtotal,
			Discount:      req.Discount,
			FinalTotal:    finalTotal,
			PaymentMethod: req.PaymentMethod,
			Status:        status,
			Notes:         req.Notes,
		}
		for _, r := range resolved {
			sale.Items = append(sale.Items, model.SaleItem{
				ProductID: r.productID,
				Quantity:  r.quantity,
				Price:     r.price,
				Total:     r.total,
			})
		}
		if err := s.repo.Create(ctx, tx, &sale); err != nil {
			return err
		}

		for _, r := range resolved {
			if err := s.productRepo.AdjustStockTx(tx, r.productID, -r.quantity); err != nil {
				return fmt.Errorf("adjusting stock for %s: %w", r.name, err)
			}
			ref := "sale:" + sale.ID.String()
			mov := &model.StockMovement{
				ProductID: r.productID,
				Quantity:  r.quantity,
				Type:      "out",
				Reference: &ref,
			}
			if err := s.movementRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := mapSale(sale)
	return &resp, nil
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		result = append(result, mapSale(sale))
	}
	return result, nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("sale not found")
		}
		return nil, err
	}
	resp := mapSale(*sale)
	return &resp, nil
}

// UpdateStatus changes the sale status. Moving to "cancelled" goes through
// Cancel so the stock restoration always happens.
func (s *saleService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status == "cancelled" {
		return s.Cancel(ctx, id)
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("sale not found")
		}
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Cancel marks a sale cancelled and restores the stock of every line item,
// appending inverse "in" movements. Already-cancelled sales are rejected.
func (s *saleService) Cancel(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("sale not found")
	}
	if sale.Status == "cancelled" {
		return errors.New("sale is already cancelled")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			if err := s.productRepo.AdjustStockTx(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			ref := "sale-cancel:" + sale.ID.String()
			mov := &model.StockMovement{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Type:      "in",
				Reference: &ref,
			}
			if err := s.movementRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return s.repo.UpdateStatusTx(tx, id, "cancelled")
	})
}

func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("sale not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
