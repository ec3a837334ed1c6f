package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/config"
	handler "charty-dashboard-backend/internal/handlers"
	"charty-dashboard-backend/internal/logger"
	"charty-dashboard-backend/internal/middleware"
	"charty-dashboard-backend/internal/repository"
	"charty-dashboard-backend/internal/services/actions"
	"charty-dashboard-backend/internal/services/auth"
	"charty-dashboard-backend/internal/services/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, listingCache cache.Cache, cfg *config.Configuration, log *logger.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	chartRepo := repository.NewChartRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)

	actionService := actions.NewService(
		invoiceRepo,
		chartRepo,
		cache.NewPathRevalidator(listingCache, log),
		log,
	)
	dashboardService := dashboard.NewService(
		invoiceRepo,
		chartRepo,
		customerRepo,
		listingCache,
		dashboard.Options{ItemsPerPage: cfg.Dashboard.ItemsPerPage, CacheTTL: cfg.Cache.TTL},
		log,
	)
	credentials := auth.NewCredentialsProvider(userRepo, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authService := auth.NewService(credentials, log)

	invoiceHandler := handler.NewInvoiceHandler(actionService, dashboardService)
	chartHandler := handler.NewChartHandler(actionService, dashboardService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.POST("/login", middleware.LoginRateLimit(cfg.Auth.LoginRatePerMinute, log), authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	dash := api.Group("/dashboard", middleware.SessionAuth(credentials))
	dash.GET("/cards", dashboardHandler.Cards)
	dash.GET("/customers", invoiceHandler.Customers)

	invoices := dash.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/latest", invoiceHandler.Latest)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.POST("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	charts := dash.Group("/charts")
	{
		charts.GET("", chartHandler.List)
		charts.GET("/:cid", chartHandler.Get)
		charts.POST("", chartHandler.Create)
		charts.PUT("/:cid", chartHandler.Update)
		charts.POST("/:cid", chartHandler.Update)
		charts.DELETE("/:cid", chartHandler.Delete)
	}
}
