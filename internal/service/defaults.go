package service

import "github.com/shopspring/decimal"

// Tax defaults are percentages. The sales flow and the standalone invoice
// form historically apply different rates; they are kept separate on
// purpose rather than unified (see DESIGN.md).
var (
	DefaultSaleTaxRate    = decimal.NewFromInt(15)
	DefaultInvoiceTaxRate = decimal.NewFromInt(5)
)

// DefaultLowStockThreshold applies when a product has no MinStockLevel.
const DefaultLowStockThreshold = 10

var hundred = decimal.NewFromInt(100)
