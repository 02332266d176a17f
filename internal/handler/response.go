package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"billforge/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondValidationError sends a 422 with per-field messages.
func RespondValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    "VALIDATION_FAILED",
			Message: "required fields are missing",
			Fields:  fields,
		},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "INVOICE_NOT_FOUND", "invoice not found"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "ITEM_NOT_FOUND", "line item not found"
	case errors.Is(err, domain.ErrInvalidItemField):
		return http.StatusBadRequest, "INVALID_ITEM_FIELD", "invalid line item field; allowed: hsn_code, description, quantity, rate"
	case errors.Is(err, domain.ErrCatalogueNotFound):
		return http.StatusNotFound, "CATALOGUE_NOT_FOUND", "catalogue not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found"
	case errors.Is(err, domain.ErrUnsupportedLogoType):
		return http.StatusBadRequest, "UNSUPPORTED_LOGO_TYPE", "unsupported logo type; allowed: png, jpeg"
	case errors.Is(err, domain.ErrLogoTooLarge):
		return http.StatusRequestEntityTooLarge, "LOGO_TOO_LARGE", "logo exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvoiceNotFinalized):
		return http.StatusBadRequest, "INVOICE_NOT_FINALIZED", "invoice has not been finalized"
	case errors.Is(err, domain.ErrDecodeFailed):
		return http.StatusBadRequest, "DECODE_FAILED", "invoice data could not be decoded"
	case errors.Is(err, domain.ErrEmailDeliveryFailed):
		return http.StatusBadGateway, "EMAIL_DELIVERY_FAILED", "invoice email could not be delivered"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
