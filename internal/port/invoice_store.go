package port

import (
	"context"

	"github.com/google/uuid"

	"billforge/internal/domain"
)

// InvoiceStore defines the contract for invoice session persistence.
type InvoiceStore interface {
	Put(ctx context.Context, inv *domain.Invoice) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
