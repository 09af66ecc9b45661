package main

// Standalone seeder: populates empty tables with the starter catalog and
// exits. Useful for provisioning a database without starting the API.

import (
	"context"
	"os"
	"time"

	"github.com/mturke1996/al-fahed/internal/config"
	"github.com/mturke1996/al-fahed/internal/infra"
	"github.com/mturke1996/al-fahed/internal/repository"
	"github.com/mturke1996/al-fahed/internal/seed"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	seeder := seed.NewSeeder(
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seed complete")
}
