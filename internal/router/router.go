package router

import (
	"github.com/gin-gonic/gin"

	"billforge/internal/handler"
	"billforge/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	invoiceH *handler.InvoiceHandler,
	previewH *handler.PreviewHandler,
	exportH *handler.ExportHandler,
	catalogueH *handler.CatalogueHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Standalone shareable preview. State travels in the query string,
	// so this route needs no session lookup.
	r.GET("/preview", previewH.Standalone)

	v1 := r.Group("/api/v1")

	invoices := v1.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("/:id", invoiceH.Get)
	invoices.PATCH("/:id", invoiceH.Update)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.POST("/:id/items", invoiceH.AddItem)
	invoices.POST("/:id/items/catalogue", invoiceH.AddCatalogueProduct)
	invoices.PATCH("/:id/items/:itemId", invoiceH.UpdateItem)
	invoices.DELETE("/:id/items/:itemId", invoiceH.RemoveItem)
	invoices.PUT("/:id/logo", invoiceH.SetLogo)
	invoices.DELETE("/:id/logo", invoiceH.ClearLogo)
	invoices.POST("/:id/finalize", invoiceH.Finalize)
	invoices.GET("/:id/share", invoiceH.ShareURL)
	invoices.GET("/:id/preview", previewH.Live)
	invoices.GET("/:id/export/csv", exportH.CSV)
	invoices.GET("/:id/export/xlsx", exportH.XLSX)
	invoices.GET("/:id/export/pdf", exportH.PDF)
	invoices.POST("/:id/send", exportH.Send)

	v1.GET("/catalogues", catalogueH.List)

	return r
}
