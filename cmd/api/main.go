package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/config"
	"github.com/restobill/restobill-api/internal/infrastructure/database"
	"github.com/restobill/restobill-api/internal/infrastructure/repository"
	"github.com/restobill/restobill-api/internal/presentation/http/handler"
	"github.com/restobill/restobill-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the sample menu when the catalog is empty
	if err := database.SeedMenu(db); err != nil {
		log.Printf("Warning: Failed to seed menu: %v", err)
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	pricingService := service.NewPricingService()
	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(orderRepo, pricingService, cfg.Payment.AllowPartial)
	reportService := service.NewReportService(reportRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Menu:   handler.NewMenuHandler(menuService),
		Order:  handler.NewOrderHandler(orderService, pricingService),
		Report: handler.NewReportHandler(reportService),
	}

	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
