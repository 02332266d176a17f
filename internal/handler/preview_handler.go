package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billforge/internal/render"
	"billforge/internal/service"
	"billforge/internal/share"
)

// PreviewHandler serves the rendered invoice document: the live editor
// preview and the standalone shareable page.
type PreviewHandler struct {
	invoiceService service.InvoiceService
	renderer       *render.Renderer
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(invoiceService service.InvoiceService, renderer *render.Renderer) *PreviewHandler {
	return &PreviewHandler{invoiceService: invoiceService, renderer: renderer}
}

// Live handles GET /api/v1/invoices/:id/preview
func (h *PreviewHandler) Live(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	html, err := h.invoiceService.RenderPreview(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// Standalone handles GET /preview?data=...
// A missing or undecodable payload degrades to the placeholder page
// rather than an error response; the link must always show something.
func (h *PreviewHandler) Standalone(c *gin.Context) {
	payload, found := rawQueryParam(c.Request.URL.RawQuery, "data")
	if !found {
		h.placeholder(c)
		return
	}

	inv, err := share.Decode(payload)
	if err != nil {
		h.placeholder(c)
		return
	}

	html, err := h.renderer.Render(inv)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *PreviewHandler) placeholder(c *gin.Context) {
	html, err := h.renderer.Placeholder()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// rawQueryParam pulls a query value without percent-decoding it.
// c.Query would unescape the payload once before share.Decode does,
// corrupting snapshots that contain encoded reserved characters.
func rawQueryParam(rawQuery, key string) (string, bool) {
	for _, pair := range strings.Split(rawQuery, "&") {
		if v, found := strings.CutPrefix(pair, key+"="); found {
			return v, true
		}
	}
	return "", false
}
