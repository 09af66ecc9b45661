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

// CustomerService defines business operations for customers.
type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error) {
	c := &model.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Company:   req.Company,
		TaxNumber: req.TaxNumber,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CustomerResponse{}, err
	}
	return mapCustomer(*c), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCustomer(c))
	}
	return result, nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CustomerResponse{}, errors.New("customer not found")
		}
		return dto.CustomerResponse{}, err
	}
	return mapCustomer(*c), nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CustomerResponse{}, errors.New("customer not found")
		}
		return dto.CustomerResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.Company != nil {
		c.Company = req.Company
	}
	if req.TaxNumber != nil {
		c.TaxNumber = req.TaxNumber
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return dto.CustomerResponse{}, err
	}
	return mapCustomer(*c), nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("customer not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
