package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mturke1996/al-fahed/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStatsSvc() (StatsService, *stubProductRepo, *stubSaleRepo, *stubInvoiceRepo, *stubCustomerRepo) {
	productRepo := newStubProductRepo()
	saleRepo := newStubSaleRepo()
	invoiceRepo := newStubInvoiceRepo()
	customerRepo := newStubCustomerRepo()
	svc := NewStatsService(productRepo, saleRepo, invoiceRepo, customerRepo)
	return svc, productRepo, saleRepo, invoiceRepo, customerRepo
}

func TestDashboardStats_CountsAndRevenue(t *testing.T) {
	svc, productRepo, saleRepo, invoiceRepo, customerRepo := buildStatsSvc()

	seedProduct(productRepo, "PVC Pipes", 150.00, 100, intPtr(20))
	seedProduct(productRepo, "Brass Valves", 100.00, 5, intPtr(10)) // low
	seedProduct(productRepo, "Tiles", 30.00, 7, nil)                // low (default 10)

	for _, total := range []float64{250.00, 150.00} {
		s := &model.Sale{ID: uuid.New(), FinalTotal: decimal.NewFromFloat(total)}
		saleRepo.sales[s.ID] = s
	}
	seedInvoice(invoiceRepo, 950)
	seedCustomer(customerRepo, "Client 1")
	seedCustomer(customerRepo, "Client 2")

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalSales)
	assert.Equal(t, 1, stats.TotalInvoices)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(400)), "revenue = %s", stats.TotalRevenue)
	assert.Equal(t, 2, stats.LowStockProducts)
}

func TestDashboardStats_EmptyDatabase(t *testing.T) {
	svc, _, _, _, _ := buildStatsSvc()

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalProducts)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Equal(t, 0, stats.LowStockProducts)
}

func TestDashboardStats_PropagatesReadErrors(t *testing.T) {
	svc, _, saleRepo, _, _ := buildStatsSvc()
	saleRepo.listErr = errors.New("connection reset")

	_, err := svc.DashboardStats(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}
