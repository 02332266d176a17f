package handler

import (
	"github.com/gin-gonic/gin"

	"billforge/internal/service"
)

// CatalogueHandler handles product catalogue endpoints.
type CatalogueHandler struct {
	catalogueService service.CatalogueService
}

// NewCatalogueHandler creates a new CatalogueHandler.
func NewCatalogueHandler(catalogueService service.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{catalogueService: catalogueService}
}

// List handles GET /api/v1/catalogues
func (h *CatalogueHandler) List(c *gin.Context) {
	catalogues, err := h.catalogueService.ListCatalogues(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, catalogues)
}
