package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/service"
)

// InvoiceHandler handles invoice draft endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// invoiceView pairs the invoice state with its derived totals so the
// editor never recomputes money on its side.
func invoiceView(inv *domain.Invoice) gin.H {
	return gin.H{"invoice": inv, "totals": inv.Totals()}
}

// Create handles POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	inv, err := h.invoiceService.Create(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, invoiceView(inv))
}

// Get handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoiceView(inv))
}

// Delete handles DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// Update handles PATCH /api/v1/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req struct {
		From          *string  `json:"from"`
		ProposalTo    *string  `json:"proposal_to"`
		ShipTo        *string  `json:"ship_to"`
		InvoiceNumber *string  `json:"invoice_number"`
		Date          *string  `json:"date"`
		PaymentTerms  *string  `json:"payment_terms"`
		DueDate       *string  `json:"due_date"`
		PONumber      *string  `json:"po_number"`
		Discount      *float64 `json:"discount"`
		Tax           *float64 `json:"tax"`
		Shipping      *float64 `json:"shipping"`
		BankDetails   *string  `json:"bank_details"`
		Terms         *string  `json:"terms"`
		Theme         *string  `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}

	inv, err := h.invoiceService.Update(c.Request.Context(), &service.UpdateInvoiceInput{
		InvoiceID:     id,
		From:          req.From,
		ProposalTo:    req.ProposalTo,
		ShipTo:        req.ShipTo,
		InvoiceNumber: req.InvoiceNumber,
		Date:          req.Date,
		PaymentTerms:  req.PaymentTerms,
		DueDate:       req.DueDate,
		PONumber:      req.PONumber,
		Discount:      req.Discount,
		Tax:           req.Tax,
		Shipping:      req.Shipping,
		BankDetails:   req.BankDetails,
		Terms:         req.Terms,
		Theme:         req.Theme,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoiceView(inv))
}

// AddItem handles POST /api/v1/invoices/:id/items
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.AddItem(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, invoiceView(inv))
}

// UpdateItem handles PATCH /api/v1/invoices/:id/items/:itemId
func (h *InvoiceHandler) UpdateItem(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	var req struct {
		Field string      `json:"field" binding:"required"`
		Value interface{} `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "field is required")
		return
	}

	input := &service.UpdateItemInput{InvoiceID: id, ItemID: itemID, Field: req.Field}
	field, fieldOK := domain.ParseItemField(req.Field)
	if !fieldOK {
		HandleError(c, domain.ErrInvalidItemField)
		return
	}
	if field.Numeric() {
		number, numOK := req.Value.(float64)
		if !numOK {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "value must be a number for this field")
			return
		}
		input.Number = number
	} else {
		text, textOK := req.Value.(string)
		if !textOK {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "value must be a string for this field")
			return
		}
		input.Text = text
	}

	inv, err := h.invoiceService.UpdateItem(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoiceView(inv))
}

// RemoveItem handles DELETE /api/v1/invoices/:id/items/:itemId
func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}
	inv, err := h.invoiceService.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoiceView(inv))
}

// AddCatalogueProduct handles POST /api/v1/invoices/:id/items/catalogue
func (h *InvoiceHandler) AddCatalogueProduct(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "product_id is required")
		return
	}

	inv, err := h.invoiceService.AddCatalogueProduct(c.Request.Context(), id, req.ProductID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, invoiceView(inv))
}

// SetLogo handles PUT /api/v1/invoices/:id/logo
func (h *InvoiceHandler) SetLogo(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "logo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "reading logo file failed")
		return
	}

	inv, err := h.invoiceService.SetLogo(c.Request.Context(), &service.SetLogoInput{
		InvoiceID:   id,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoiceView(inv))
}

// ClearLogo handles DELETE /api/v1/invoices/:id/logo
func (h *InvoiceHandler) ClearLogo(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.ClearLogo(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoiceView(inv))
}

// Finalize handles POST /api/v1/invoices/:id/finalize
func (h *InvoiceHandler) Finalize(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	inv, fieldErrs, err := h.invoiceService.Finalize(c.Request.Context(), id)
	if errors.Is(err, domain.ErrValidationFailed) {
		RespondValidationError(c, fieldErrs)
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoiceView(inv))
}

// ShareURL handles GET /api/v1/invoices/:id/share
func (h *InvoiceHandler) ShareURL(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	shareURL, err := h.invoiceService.ShareURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": shareURL})
}

func parseInvoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return uuid.Nil, false
	}
	return id, true
}
