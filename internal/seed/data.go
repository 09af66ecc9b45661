package seed

import "github.com/shopspring/decimal"

// Starter catalog for a fresh install. The panel ships with the engineering
// supply categories and a handful of demo products and customers so the
// dashboard is not empty on first boot.

type categorySeed struct {
	Name        string
	Description string
	Color       string
}

type productSeed struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryName  string
	Stock         int
	SKU           string
	Barcode       string
	Weight        float64
	Dimensions    string
	Supplier      string
	CostPrice     decimal.Decimal
	MinStockLevel int
	MaxStockLevel int
}

type customerSeed struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	Company   string
	TaxNumber string
}

var defaultCategories = []categorySeed{
	{Name: "Pipes", Description: "All kinds of pipes and tubing", Color: "blue"},
	{Name: "Valves", Description: "Water and gas valves", Color: "green"},
	{Name: "Taps", Description: "Assorted water taps", Color: "purple"},
	{Name: "Tools", Description: "Construction and welding tools", Color: "orange"},
	{Name: "Insulation", Description: "Thermal insulation materials", Color: "red"},
	{Name: "Electrical", Description: "Electrical supplies", Color: "yellow"},
	{Name: "Construction", Description: "Basic construction materials", Color: "indigo"},
	{Name: "Steel", Description: "Rebar and structural steel", Color: "teal"},
	{Name: "Doors & Windows", Description: "Doors and windows", Color: "pink"},
	{Name: "Paints", Description: "Paints and coatings", Color: "gray"},
	{Name: "Tiles", Description: "Tiles and ceramics", Color: "cyan"},
}

var defaultProducts = []productSeed{
	{
		Name:          "PVC Pipes",
		Description:   "High quality PVC pipes for engineering projects",
		Price:         decimal.NewFromFloat(150.00),
		CategoryName:  "Pipes",
		Stock:         100,
		SKU:           "PVC-001",
		Barcode:       "1234567890",
		Weight:        2.5,
		Dimensions:    "6m x 110mm",
		Supplier:      "Modern Construction Co.",
		CostPrice:     decimal.NewFromFloat(120.00),
		MinStockLevel: 20,
		MaxStockLevel: 200,
	},
	{
		Name:          "Brass Valves",
		Description:   "Corrosion resistant brass valves",
		Price:         decimal.NewFromFloat(85.50),
		CategoryName:  "Valves",
		Stock:         50,
		SKU:           "VALVE-001",
		Barcode:       "1234567891",
		Weight:        0.5,
		Dimensions:    "1/2 inch",
		Supplier:      "Advanced Valve Works",
		CostPrice:     decimal.NewFromFloat(65.00),
		MinStockLevel: 10,
		MaxStockLevel: 100,
	},
	{
		Name:          "Galvanized Taps",
		Description:   "Galvanized iron water taps",
		Price:         decimal.NewFromFloat(120.00),
		CategoryName:  "Taps",
		Stock:         75,
		SKU:           "TAP-001",
		Barcode:       "1234567892",
		Weight:        1.2,
		Dimensions:    "3/4 inch",
		Supplier:      "Global Taps Co.",
		CostPrice:     decimal.NewFromFloat(90.00),
		MinStockLevel: 15,
		MaxStockLevel: 150,
	},
	{
		Name:          "Welding Tools",
		Description:   "Professional welding tool set",
		Price:         decimal.NewFromFloat(250.00),
		CategoryName:  "Tools",
		Stock:         25,
		SKU:           "WELD-001",
		Barcode:       "1234567893",
		Weight:        3.0,
		Dimensions:    "30cm x 15cm",
		Supplier:      "Professional Tools Est.",
		CostPrice:     decimal.NewFromFloat(180.00),
		MinStockLevel: 5,
		MaxStockLevel: 50,
	},
	{
		Name:          "Thermal Insulation",
		Description:   "Thermal insulation sheets for buildings",
		Price:         decimal.NewFromFloat(180.00),
		CategoryName:  "Insulation",
		Stock:         60,
		SKU:           "INSUL-001",
		Barcode:       "1234567894",
		Weight:        1.8,
		Dimensions:    "1m x 0.5m",
		Supplier:      "Advanced Insulation Co.",
		CostPrice:     decimal.NewFromFloat(140.00),
		MinStockLevel: 12,
		MaxStockLevel: 120,
	},
}

var defaultCustomers = []customerSeed{
	{Name: "Client 1", Email: "client1@example.com", Phone: "0123456789", Address: "Cairo", Company: "Consumer Co.", TaxNumber: "123456789012345"},
	{Name: "Client 2", Email: "client2@example.com", Phone: "9876543210", Address: "Giza", Company: "Consumer Co.", TaxNumber: "123456789012346"},
	{Name: "Client 3", Email: "client3@example.com", Phone: "1122334455", Address: "Alexandria", Company: "Consumer Co.", TaxNumber: "123456789012347"},
	{Name: "Client 4", Email: "client4@example.com", Phone: "6677889900", Address: "Alexandria", Company: "Consumer Co.", TaxNumber: "123456789012348"},
	{Name: "Client 5", Email: "client5@example.com", Phone: "1231231234", Address: "Cairo", Company: "Consumer Co.", TaxNumber: "123456789012349"},
	{Name: "Client 6", Email: "client6@example.com", Phone: "4564564567", Address: "Giza", Company: "Consumer Co.", TaxNumber: "123456789012350"},
	{Name: "Client 7", Email: "client7@example.com", Phone: "7897897890", Address: "Alexandria", Company: "Consumer Co.", TaxNumber: "123456789012351"},
	{Name: "Client 8", Email: "client8@example.com", Phone: "0123456789", Address: "Alexandria", Company: "Consumer Co.", TaxNumber: "123456789012352"},
	{Name: "Client 9", Email: "client9@example.com", Phone: "9876543210", Address: "Cairo", Company: "Consumer Co.", TaxNumber: "123456789012353"},
	{Name: "Client 10", Email: "client10@example.com", Phone: "1122334455", Address: "Giza", Company: "Consumer Co.", TaxNumber: "123456789012354"},
}
