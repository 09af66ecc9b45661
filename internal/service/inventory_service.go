package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"
	"github.com/mturke1996/al-fahed/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService manages manual stock movements and low-stock alerts.
type InventoryService interface {
	RecordMovement(ctx context.Context, req dto.CreateMovementRequest) (*dto.MovementResponse, error)
	ListMovements(ctx context.Context) ([]dto.MovementResponse, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]dto.MovementResponse, error)
	LowStockAlerts(ctx context.Context) ([]dto.LowStockAlert, error)
}

type inventoryService struct {
	repo        repository.StockMovementRepository
	productRepo repository.ProductRepository
}

func NewInventoryService(repo repository.StockMovementRepository, productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{repo: repo, productRepo: productRepo}
}

// RecordMovement applies a stock change and appends the ledger entry in one
// transaction. The delta depends on the movement type:
//
//	in          +quantity (quantity must be positive)
//	out         -quantity (quantity must be positive, stock may not go negative)
//	adjustment  quantity applied as a signed delta
func (s *inventoryService) RecordMovement(ctx context.Context, req dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid productId: %w", err)
	}
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}

	var delta int
	switch req.Type {
	case "in":
		if req.Quantity <= 0 {
			return nil, errors.New("quantity must be positive for an 'in' movement")
		}
		delta = req.Quantity
	case "out":
		if req.Quantity <= 0 {
			return nil, errors.New("quantity must be positive for an 'out' movement")
		}
		delta = -req.Quantity
	case "adjustment":
		delta = req.Quantity
	default:
		return nil, fmt.Errorf("unknown movement type %q", req.Type)
	}

	if p.Stock+delta < 0 {
		return nil, fmt.Errorf("movement would leave %s with negative stock", p.Name)
	}

	mov := &model.StockMovement{
		ProductID: productID,
		Quantity:  req.Quantity,
		Type:      req.Type,
		Reference: req.Reference,
		Notes:     req.Notes,
	}
	txErr := runTx(ctx, s.productRepo.DB(), func(tx *gorm.DB) error {
		if err := s.productRepo.AdjustStockTx(tx, productID, delta); err != nil {
			return err
		}
		return s.repo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := mapMovement(*mov)
	return &resp, nil
}

func (s *inventoryService) ListMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	movements, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		result = append(result, mapMovement(m))
	}
	return result, nil
}

func (s *inventoryService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]dto.MovementResponse, error) {
	movements, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		result = append(result, mapMovement(m))
	}
	return result, nil
}

// LowStockAlerts returns every product at or below its minimum stock level,
// falling back to DefaultLowStockThreshold when no minimum is configured.
func (s *inventoryService) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlert, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.LowStockAlert, 0)
	for _, p := range products {
		min := DefaultLowStockThreshold
		if p.MinStockLevel != nil {
			min = *p.MinStockLevel
		}
		if p.Stock <= min {
			alerts = append(alerts, dto.LowStockAlert{
				ProductID:     p.ID.String(),
				Name:          p.Name,
				Stock:         p.Stock,
				MinStockLevel: min,
			})
		}
	}
	return alerts, nil
}
