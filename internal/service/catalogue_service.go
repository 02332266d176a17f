package service

import (
	"context"

	"billforge/internal/domain"
	"billforge/internal/port"
)

// CatalogueService provides read access to the product catalogues.
type CatalogueService interface {
	ListCatalogues(ctx context.Context) ([]domain.Catalogue, error)
}

type catalogueService struct {
	repo port.CatalogueRepository
}

// NewCatalogueService creates a new CatalogueService implementation.
func NewCatalogueService(repo port.CatalogueRepository) CatalogueService {
	return &catalogueService{repo: repo}
}

func (s *catalogueService) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	return s.repo.ListCatalogues(ctx)
}
