package port

import (
	"context"

	"billforge/internal/domain"
)

// CatalogueRepository defines the contract for product catalogue data
// access.
type CatalogueRepository interface {
	ListCatalogues(ctx context.Context) ([]domain.Catalogue, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}
