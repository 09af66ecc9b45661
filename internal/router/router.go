package router

import (
	"time"

	"github.com/mturke1996/al-fahed/internal/config"
	"github.com/mturke1996/al-fahed/internal/handler"
	"github.com/mturke1996/al-fahed/internal/middleware"
	"github.com/mturke1996/al-fahed/internal/repository"
	"github.com/mturke1996/al-fahed/internal/service"
	"github.com/mturke1996/al-fahed/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)

	// Worker dispatcher, injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	saleSvc := service.NewSaleService(saleRepo, customerRepo, productRepo, movementRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, saleRepo, dispatcher)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo)
	inventorySvc := service.NewInventoryService(movementRepo, productRepo)
	statsSvc := service.NewStatsService(productRepo, saleRepo, invoiceRepo, customerRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc)
	paymentsH := handler.NewPaymentsHandler(paymentSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.GET("", categoriesH.List)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Create)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.Get)
			sales.PATCH("/:id/status", salesH.UpdateStatus)
			sales.DELETE("/:id", salesH.Delete)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.POST("", invoicesH.Create)
			invoices.GET("", invoicesH.List)
			invoices.GET("/:id", invoicesH.Get)
			invoices.PATCH("/:id/status", invoicesH.UpdateStatus)
			invoices.DELETE("/:id", invoicesH.Delete)
			invoices.GET("/:id/payments", paymentsH.ListByInvoice)
		}

		v1.POST("/payments", paymentsH.Create)

		inventory := v1.Group("/inventory")
		{
			inventory.POST("/movements", inventoryH.RecordMovement)
			inventory.GET("/movements", inventoryH.ListMovements)
			inventory.GET("/low-stock", inventoryH.LowStock)
		}

		v1.GET("/stats/dashboard", statsH.Dashboard)
	}

	return r
}
