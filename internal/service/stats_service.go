package service

import (
	"context"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/model"
	"github.com/mturke1996/al-fahed/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// StatsService computes the dashboard summary.
type StatsService interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

type statsService struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

func NewStatsService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
) StatsService {
	return &statsService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}

// DashboardStats fetches the four collections concurrently and reduces them
// client-side. Cost is O(total rows) per call; there is no caching or
// incremental maintenance, every dashboard view re-fetches everything.
// Revenue sums FinalTotal over all sales; low-stock counts products at or
// below their minimum (default threshold when unset).
func (s *statsService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var (
		products  []model.Product
		sales     []model.Sale
		invoices  []model.Invoice
		customers []model.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.customerRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.FinalTotal)
	}

	lowStock := 0
	for _, p := range products {
		min := DefaultLowStockThreshold
		if p.MinStockLevel != nil {
			min = *p.MinStockLevel
		}
		if p.Stock <= min {
			lowStock++
		}
	}

	return &dto.DashboardStats{
		TotalProducts:    len(products),
		TotalSales:       len(sales),
		TotalInvoices:    len(invoices),
		TotalCustomers:   len(customers),
		TotalRevenue:     revenue,
		LowStockProducts: lowStock,
	}, nil
}
