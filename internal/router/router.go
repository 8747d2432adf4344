package router

import (
	"github.com/gin-gonic/gin"

	"billforge/internal/config"
	"billforge/internal/handler"
	"billforge/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	poH *handler.PurchaseOrderHandler,
	clientH *handler.ClientHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// Invoice routes. The verb-style paths match what the frontend calls.
	invoices := api.Group("/invoices")
	invoices.POST("/create", invoiceH.Create)
	invoices.GET("/get", invoiceH.List)
	invoices.GET("/get/:id", invoiceH.GetByID)
	invoices.PUT("/put/:id", invoiceH.Update)
	invoices.DELETE("/delete/:id", invoiceH.Delete)
	invoices.DELETE("/deleteall", invoiceH.DeleteMany)
	invoices.GET("/export", invoiceH.Export)
	invoices.GET("/:id/download/word", invoiceH.DownloadWord)
	invoices.GET("/:id/download/pdf", invoiceH.DownloadPDF)
	invoices.POST("/:id/email", invoiceH.Email)

	// Purchase order routes
	orders := api.Group("/purchase-orders")
	orders.POST("/create", poH.Create)
	orders.GET("/get", poH.List)
	orders.GET("/get/:id", poH.GetByID)
	orders.PUT("/put/:id", poH.Update)
	orders.DELETE("/delete/:id", poH.Delete)
	orders.DELETE("/deleteall", poH.DeleteMany)
	orders.GET("/export", poH.Export)
	orders.GET("/:id/download/word", poH.DownloadWord)
	orders.GET("/:id/download/pdf", poH.DownloadPDF)
	orders.POST("/:id/email", poH.Email)

	// Client directory routes
	clients := api.Group("/clients")
	clients.POST("/create", clientH.Create)
	clients.GET("/get", clientH.List)
	clients.GET("/get/:id", clientH.GetByID)
	clients.PUT("/update/:id", clientH.Update)
	clients.DELETE("/delete/:id", clientH.Delete)

	return r
}
