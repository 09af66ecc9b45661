package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsService struct {
	stats *dto.DashboardStats
	err   error
}

func (s *stubStatsService) DashboardStats(_ context.Context) (*dto.DashboardStats, error) {
	return s.stats, s.err
}

var _ service.StatsService = (*stubStatsService)(nil)

func TestDashboardEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStatsHandler(&stubStatsService{stats: &dto.DashboardStats{
		TotalProducts:    5,
		TotalSales:       3,
		TotalInvoices:    2,
		TotalCustomers:   10,
		TotalRevenue:     decimal.NewFromFloat(400.00),
		LowStockProducts: 1,
	}})
	r.GET("/v1/stats/dashboard", h.Dashboard)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/stats/dashboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 5, body["totalProducts"])
	assert.EqualValues(t, 10, body["totalCustomers"])
	assert.EqualValues(t, 1, body["lowStockProducts"])
	// decimal serializes as a JSON number string
	assert.Equal(t, "400", body["totalRevenue"])
}

type stubSaleService struct{}

func (s *stubSaleService) Create(_ context.Context, _ dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	return &dto.SaleResponse{}, nil
}
func (s *stubSaleService) List(_ context.Context) ([]dto.SaleResponse, error) { return nil, nil }
func (s *stubSaleService) Get(_ context.Context, _ uuid.UUID) (*dto.SaleResponse, error) {
	return nil, nil
}
func (s *stubSaleService) UpdateStatus(_ context.Context, _ uuid.UUID, _ string) error { return nil }
func (s *stubSaleService) Cancel(_ context.Context, _ uuid.UUID) error                 { return nil }
func (s *stubSaleService) Delete(_ context.Context, _ uuid.UUID) error                 { return nil }

var _ service.SaleService = (*stubSaleService)(nil)

func TestCreateSale_ValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSalesHandler(&stubSaleService{})
	r.POST("/v1/sales", h.Create)

	// missing items and an unsupported payment method
	payload := `{"customerId":"` + uuid.NewString() + `","items":[],"paymentMethod":"bitcoin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Detail)
	assert.Contains(t, body.Fields, "Items")
	assert.Contains(t, body.Fields, "PaymentMethod")
}

func TestCreateSale_MalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSalesHandler(&stubSaleService{})
	r.POST("/v1/sales", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
