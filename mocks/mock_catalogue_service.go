package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billforge/internal/domain"
)

// MockCatalogueService is a mock implementation of service.CatalogueService.
type MockCatalogueService struct {
	mock.Mock
}

func (m *MockCatalogueService) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Catalogue), args.Error(1)
}
