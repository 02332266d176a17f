package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/port"
)

type invoiceStore struct {
	mu       sync.RWMutex
	invoices map[uuid.UUID]*domain.Invoice
}

// NewInvoiceStore creates an in-memory InvoiceStore. Invoices live for
// the lifetime of the process; durable state travels in share links.
//
// The store owns every draft: Put and Get exchange deep copies, so
// callers never share mutable state and concurrent requests against the
// same draft resolve last-write-wins at the Put that lands last.
func NewInvoiceStore() port.InvoiceStore {
	return &invoiceStore{invoices: make(map[uuid.UUID]*domain.Invoice)}
}

func (s *invoiceStore) Put(ctx context.Context, inv *domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[inv.ID] = inv.Clone()
	return nil
}

func (s *invoiceStore) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	return inv.Clone(), nil
}

func (s *invoiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[id]; !ok {
		return domain.ErrInvoiceNotFound
	}
	delete(s.invoices, id)
	return nil
}
