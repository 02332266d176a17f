package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billforge/internal/domain"
)

// MockCatalogueRepo is a mock implementation of port.CatalogueRepository.
type MockCatalogueRepo struct {
	mock.Mock
}

func (m *MockCatalogueRepo) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Catalogue), args.Error(1)
}

func (m *MockCatalogueRepo) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
