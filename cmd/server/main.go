package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mturke1996/al-fahed/internal/config"
	"github.com/mturke1996/al-fahed/internal/infra"
	"github.com/mturke1996/al-fahed/internal/repository"
	"github.com/mturke1996/al-fahed/internal/router"
	"github.com/mturke1996/al-fahed/internal/seed"
	"github.com/mturke1996/al-fahed/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger: pretty console in dev, JSON in prod
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First-boot seed: fills empty tables with the starter catalog
	if cfg.SeedOnBoot {
		seeder := seed.NewSeeder(
			repository.NewCategoryRepository(db),
			repository.NewProductRepository(db),
			repository.NewCustomerRepository(db),
		)
		if err := seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	// Goroutine worker pool for async tasks (invoice PDF rendering).
	// Worker handlers are wired here (composition root) so that the pool
	// has full access to all infrastructure dependencies.
	invoiceRepo := repository.NewInvoiceRepository(db)
	pdfWorker := worker.NewInvoicePDFWorker(invoiceRepo, cfg.PDFStoragePath)
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, pdfWorker)

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("al-fahed backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
