package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/dairy-ledger/config"
	"github.com/yourusername/dairy-ledger/handlers"
	"github.com/yourusername/dairy-ledger/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "dairy-ledger-api",
		})
	})

	// Auth endpoints
	authHandler := handlers.NewAuthHandler(db, cfg)
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.JwtAuthMiddleware(cfg))
	{
		customerHandler := handlers.NewCustomerHandler(db)
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers", customerHandler.List)
		api.GET("/customers/:id", customerHandler.Get)
		api.PUT("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", middleware.RequireRole("owner"), customerHandler.Delete)

		entryHandler := handlers.NewEntryHandler(db)
		api.PUT("/entries", entryHandler.Upsert)
		api.POST("/entries/range", entryHandler.UpsertRange)
		api.GET("/customers/:id/entries", entryHandler.ListByCustomer)
		api.DELETE("/entries/:id", entryHandler.Delete)

		paymentHandler := handlers.NewPaymentHandler(db)
		api.POST("/payments", paymentHandler.Create)
		api.GET("/customers/:id/payments", paymentHandler.ListByCustomer)
		api.DELETE("/payments/:id", paymentHandler.Delete)

		dashboardHandler := handlers.NewDashboardHandler(db)
		api.GET("/dashboard", dashboardHandler.Summary)
		api.GET("/route", dashboardHandler.Route)
		api.POST("/route/mark-all", dashboardHandler.MarkAll)

		invoiceHandler := handlers.NewInvoiceHandler(db, cfg)
		api.POST("/invoices", invoiceHandler.Create)
		api.GET("/invoices/:id", invoiceHandler.Get)
		api.GET("/invoices/:id/pdf", invoiceHandler.PDF)
		api.GET("/customers/:id/invoices", invoiceHandler.ListByCustomer)

		cattleHandler := handlers.NewCattleHandler(db)
		api.POST("/cattle", cattleHandler.Create)
		api.GET("/cattle", cattleHandler.List)
		api.GET("/cattle/reminders", cattleHandler.Reminders)
		api.DELETE("/cattle/:id", cattleHandler.Delete)

		backupHandler := handlers.NewBackupHandler(db)
		api.GET("/backup/export", backupHandler.Export)
		api.POST("/backup/import", middleware.RequireRole("owner"), backupHandler.Import)

		profileHandler := handlers.NewProfileHandler(db)
		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Update)

		reportHandler := handlers.NewReportHandler(db)
		api.GET("/reports/monthly", reportHandler.Monthly)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting dairy-ledger API server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
