package seed

import (
	"context"

	"github.com/mturke1996/al-fahed/internal/model"
	"github.com/mturke1996/al-fahed/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Seeder populates empty tables with the starter catalog. Each table is
// seeded only when it has zero rows, so re-running on a populated database
// is a no-op. Records are inserted one at a time: a failing record is
// logged and skipped, never aborting the rest of the run.
type Seeder struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
}

func NewSeeder(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
) *Seeder {
	return &Seeder{categories: categories, products: products, customers: customers}
}

// Run seeds categories, then products (which reference categories by name),
// then customers. Only the initial emptiness probes are fatal.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	if err := s.seedProducts(ctx); err != nil {
		return err
	}
	return s.seedCustomers(ctx)
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	count, err := s.categories.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding default categories")
	for _, c := range defaultCategories {
		cat := model.Category{Name: c.Name, Description: c.Description, Color: c.Color}
		if err := s.categories.Create(ctx, &cat); err != nil {
			log.Error().Err(err).Str("category", c.Name).Msg("seed: category insert failed, skipping")
			continue
		}
	}
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Resolve category IDs by name; a missing category leaves the
	// product uncategorized rather than failing the insert.
	categories, err := s.categories.List(ctx)
	if err != nil {
		return err
	}
	categoryIDs := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		categoryIDs[c.Name] = c.ID
	}

	log.Info().Msg("seeding default products")
	for _, p := range defaultProducts {
		p := p
		prod := model.Product{
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			Stock:         p.Stock,
			SKU:           &p.SKU,
			Barcode:       &p.Barcode,
			Weight:        &p.Weight,
			Dimensions:    &p.Dimensions,
			Supplier:      &p.Supplier,
			CostPrice:     &p.CostPrice,
			MinStockLevel: &p.MinStockLevel,
			MaxStockLevel: &p.MaxStockLevel,
		}
		if id, ok := categoryIDs[p.CategoryName]; ok {
			prod.CategoryID = &id
		}
		if err := s.products.Create(ctx, &prod); err != nil {
			log.Error().Err(err).Str("product", p.Name).Msg("seed: product insert failed, skipping")
			continue
		}
	}
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context) error {
	count, err := s.customers.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding default customers")
	for _, c := range defaultCustomers {
		c := c
		cust := model.Customer{
			Name:      c.Name,
			Email:     &c.Email,
			Phone:     &c.Phone,
			Address:   &c.Address,
			Company:   &c.Company,
			TaxNumber: &c.TaxNumber,
		}
		if err := s.customers.Create(ctx, &cust); err != nil {
			log.Error().Err(err).Str("customer", c.Name).Msg("seed: customer insert failed, skipping")
			continue
		}
	}
	return nil
}
