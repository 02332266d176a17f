package port

import "context"

// InvoiceEmail carries a rendered invoice ready for delivery.
type InvoiceEmail struct {
	ToEmail       string
	ToName        string
	InvoiceNumber string
	HTML          []byte
	ShareURL      string
}

// EmailSender defines the contract for sending invoice emails.
type EmailSender interface {
	SendInvoice(ctx context.Context, email InvoiceEmail) error
}
