package domain

import "errors"

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNotFinalized = errors.New("invoice has not been saved yet")
	ErrValidationFailed    = errors.New("required fields are missing")
	ErrItemNotFound        = errors.New("line item not found")
	ErrInvalidItemField    = errors.New("invalid line item field")
	ErrDecodeFailed        = errors.New("invoice payload could not be decoded")
	ErrCatalogueNotFound   = errors.New("catalogue not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrUnsupportedLogoType = errors.New("unsupported logo type")
	ErrLogoTooLarge        = errors.New("logo exceeds maximum allowed size")
	ErrEmailDeliveryFailed = errors.New("invoice email could not be sent")
)
