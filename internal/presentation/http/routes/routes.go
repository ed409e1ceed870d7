package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/config"
	"github.com/restobill/restobill-api/internal/presentation/http/handler"
	"github.com/restobill/restobill-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Menu   *handler.MenuHandler
	Order  *handler.OrderHandler
	Report *handler.ReportHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		registerMenuRoutes(v1, h)
		registerOrderRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerMenuRoutes(v1 *gin.RouterGroup, h *Handlers) {
	menu := v1.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.POST("/import", h.Menu.Import)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.POST("/preview", h.Order.Preview)
		orders.GET("/:id", h.Order.Get)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/sales/daily", h.Report.DailySummary)
		reports.GET("/sales/weekly", h.Report.WeeklySummary)
		reports.GET("/sales/monthly", h.Report.MonthlySummary)
		reports.GET("/top-items", h.Report.TopItems)
	}
}
