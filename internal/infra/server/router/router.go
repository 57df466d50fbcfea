// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/receber-inter/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	clientController         *controller.ClientController
	invoiceController        *controller.InvoiceController
	reconciliationController *controller.ReconciliationController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	clientController *controller.ClientController,
	invoiceController *controller.InvoiceController,
	reconciliationController *controller.ReconciliationController,
) *Router {
	return &Router{
		healthController:         healthController,
		clientController:         clientController,
		invoiceController:        invoiceController,
		reconciliationController: reconciliationController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery.
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.clientController != nil {
			clients := v1.Group("/clients")
			{
				clients.GET("", r.clientController.List)
				clients.POST("", r.clientController.Create)
				clients.GET("/:id", r.clientController.Get)
				clients.PUT("/:id", r.clientController.Update)
				clients.DELETE("/:id", r.clientController.Delete)
			}
		}

		if r.invoiceController != nil {
			invoices := v1.Group("/invoices")
			{
				invoices.GET("", r.invoiceController.List)
				invoices.POST("/generate", r.invoiceController.Generate)
				invoices.POST("/:id/pay", r.invoiceController.MarkPaid)
				invoices.POST("/:id/cancel", r.invoiceController.Cancel)
				invoices.POST("/:id/remind", r.invoiceController.SendReminder)
				invoices.GET("/:id/pdf", r.invoiceController.DownloadPDF)
			}
		}

		if r.reconciliationController != nil {
			reconciliation := v1.Group("/reconciliation")
			{
				reconciliation.POST("/import", r.reconciliationController.Import)
				reconciliation.GET("/entries", r.reconciliationController.List)
				reconciliation.POST("/entries/:id/link", r.reconciliationController.Link)
				reconciliation.DELETE("/entries/unlinked", r.reconciliationController.Purge)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
