package dto

import "github.com/shopspring/decimal"

// DashboardStats is the flat summary record shown on the dashboard.
type DashboardStats struct {
	TotalProducts    int             `json:"totalProducts"`
	TotalSales       int             `json:"totalSales"`
	TotalInvoices    int             `json:"totalInvoices"`
	TotalCustomers   int             `json:"totalCustomers"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	LowStockProducts int             `json:"lowStockProducts"`
}
