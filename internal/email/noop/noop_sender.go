package noop

import (
	"context"
	"log"

	"billforge/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of
// sending, for local development.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoice(_ context.Context, email port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s): %s",
		email.InvoiceNumber, email.ToName, email.ToEmail, email.ShareURL)
	return nil
}
