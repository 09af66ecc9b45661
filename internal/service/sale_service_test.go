package service

import (
	"context"
	"testing"

	"github.com/mturke1996/al-fahed/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSaleSvc() (SaleService, *stubSaleRepo, *stubCustomerRepo, *stubProductRepo, *stubMovementRepo) {
	saleRepo := newStubSaleRepo()
	customerRepo := newStubCustomerRepo()
	productRepo := newStubProductRepo()
	movementRepo := &stubMovementRepo{}
	svc := NewSaleService(saleRepo, customerRepo, productRepo, movementRepo)
	return svc, saleRepo, customerRepo, productRepo, movementRepo
}

func TestCreateSale_TotalsWithDefaultTax(t *testing.T) {
	svc, _, customerRepo, productRepo, _ := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 1")
	p := seedProduct(productRepo, "PVC Pipes", 150.00, 100, nil)

	resp, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 2}},
		Discount:      decimal.NewFromInt(50),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	// subtotal 300, taxable 250, tax 15% = 37.50, final 287.50
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(300)), "total = %s", resp.Total)
	assert.True(t, resp.FinalTotal.Equal(decimal.NewFromFloat(287.50)), "finalTotal = %s", resp.FinalTotal)
	assert.Equal(t, "completed", resp.Status)
}

func TestCreateSale_CustomTaxRate(t *testing.T) {
	svc, _, customerRepo, productRepo, _ := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 2")
	p := seedProduct(productRepo, "Brass Valves", 100.00, 10, nil)

	zero := decimal.Zero
	resp, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
		TaxRate:       &zero,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.True(t, resp.FinalTotal.Equal(decimal.NewFromInt(100)))
}

func TestCreateSale_PriceOverride(t *testing.T) {
	svc, _, customerRepo, productRepo, _ := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 3")
	p := seedProduct(productRepo, "Welding Tools", 250.00, 25, nil)

	override := decimal.NewFromInt(200)
	zero := decimal.Zero
	resp, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 3, Price: &override}},
		TaxRate:       &zero,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(600)))
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Price.Equal(override))
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	svc, _, customerRepo, productRepo, _ := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 4")
	p := seedProduct(productRepo, "Thermal Insulation", 180.00, 3, nil)

	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 5}},
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "insufficient stock")
	// stock untouched on rejection
	assert.Equal(t, 3, productRepo.products[p.ID].Stock)
}

func TestCreateSale_DecrementsStockAndRecordsMovements(t *testing.T) {
	svc, _, customerRepo, productRepo, movementRepo := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 5")
	p := seedProduct(productRepo, "Galvanized Taps", 120.00, 75, nil)

	resp, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 10}},
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, 65, productRepo.products[p.ID].Stock)
	require.Len(t, movementRepo.movements, 1)
	mov := movementRepo.movements[0]
	assert.Equal(t, "out", mov.Type)
	assert.Equal(t, 10, mov.Quantity)
	require.NotNil(t, mov.Reference)
	assert.Equal(t, "sale:"+resp.ID, *mov.Reference)
}

func TestCreateSale_UnknownCustomer(t *testing.T) {
	svc, _, _, productRepo, _ := buildSaleSvc()
	p := seedProduct(productRepo, "PVC Pipes", 150.00, 100, nil)

	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    uuid.NewString(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "customer not found")
}

func TestCancelSale_RestoresStock(t *testing.T) {
	svc, saleRepo, customerRepo, productRepo, movementRepo := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 6")
	p := seedProduct(productRepo, "Brass Valves", 85.50, 50, nil)

	resp, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 8}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Equal(t, 42, productRepo.products[p.ID].Stock)

	saleID := uuid.MustParse(resp.ID)
	require.NoError(t, svc.Cancel(context.Background(), saleID))

	assert.Equal(t, 50, productRepo.products[p.ID].Stock)
	assert.Equal(t, "cancelled", saleRepo.sales[saleID].Status)

	// one "out" from the sale, one "in" from the cancel
	require.Len(t, movementRepo.movements, 2)
	assert.Equal(t, "in", movementRepo.movements[1].Type)

	// a second cancel is rejected and does not double-restore
	err = svc.Cancel(context.Background(), saleID)
	assert.ErrorContains(t, err, "already cancelled")
	assert.Equal(t, 50, productRepo.products[p.ID].Stock)
}

func TestUpdateSaleStatus_CancelledGoesThroughCancel(t *testing.T) {
	svc, _, customerRepo, productRepo, _ := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 7")
	p := seedProduct(productRepo, "PVC Pipes", 150.00, 20, nil)

	resp, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 5}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Equal(t, 15, productRepo.products[p.ID].Stock)

	require.NoError(t, svc.UpdateStatus(context.Background(), uuid.MustParse(resp.ID), "cancelled"))
	assert.Equal(t, 20, productRepo.products[p.ID].Stock)
}

func TestCreateSale_NegativeDiscountRejected(t *testing.T) {
	svc, _, customerRepo, productRepo, _ := buildSaleSvc()
	cust := seedCustomer(customerRepo, "Client 8")
	p := seedProduct(productRepo, "Tiles", 30.00, 500, nil)

	_, err := svc.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:    cust.ID.String(),
		Items:         []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
		Discount:      decimal.NewFromInt(-5),
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "discount")
}
