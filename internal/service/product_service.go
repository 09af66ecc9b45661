package service

import (
	"context"
	"errors"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"
	"github.com/mturke1996/al-fahed/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService defines business operations for the product catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	if req.Price.IsNegative() {
		return dto.ProductResponse{}, errors.New("price must not be negative")
	}

	p := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Stock:         req.Stock,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		Weight:        req.Weight,
		Dimensions:    req.Dimensions,
		Supplier:      req.Supplier,
		CostPrice:     req.CostPrice,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return dto.ProductResponse{}, errors.New("invalid categoryId")
		}
		p.CategoryID = &cid
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, errors.New("product not found")
		}
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, errors.New("product not found")
		}
		return dto.ProductResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return dto.ProductResponse{}, errors.New("price must not be negative")
		}
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return dto.ProductResponse{}, errors.New("invalid categoryId")
		}
		p.CategoryID = &cid
	}
	if req.SKU != nil {
		p.SKU = req.SKU
	}
	if req.Barcode != nil {
		p.Barcode = req.Barcode
	}
	if req.Weight != nil {
		p.Weight = req.Weight
	}
	if req.Dimensions != nil {
		p.Dimensions = req.Dimensions
	}
	if req.Supplier != nil {
		p.Supplier = req.Supplier
	}
	if req.CostPrice != nil {
		p.CostPrice = req.CostPrice
	}
	if req.MinStockLevel != nil {
		p.MinStockLevel = req.MinStockLevel
	}
	if req.MaxStockLevel != nil {
		p.MaxStockLevel = req.MaxStockLevel
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
