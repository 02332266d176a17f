package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billforge/internal/service"
)

// ExportHandler serves invoice downloads and outbound email.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CSV handles GET /api/v1/invoices/:id/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	h.download(c, h.exportService.CSV)
}

// XLSX handles GET /api/v1/invoices/:id/export/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	h.download(c, h.exportService.XLSX)
}

// PDF handles GET /api/v1/invoices/:id/export/pdf
func (h *ExportHandler) PDF(c *gin.Context) {
	h.download(c, h.exportService.PDF)
}

func (h *ExportHandler) download(c *gin.Context, generate func(context.Context, uuid.UUID) (*service.ExportFile, error)) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	file, err := generate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Send handles POST /api/v1/invoices/:id/send
func (h *ExportHandler) Send(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req struct {
		ToEmail string `json:"to_email" binding:"required,email"`
		ToName  string `json:"to_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to_email is required")
		return
	}

	err := h.exportService.Send(c.Request.Context(), &service.SendInvoiceInput{
		InvoiceID: id,
		ToEmail:   req.ToEmail,
		ToName:    req.ToName,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"sent": true})
}
