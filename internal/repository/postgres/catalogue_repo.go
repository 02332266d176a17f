package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"billforge/internal/domain"
	"billforge/internal/port"
)

type catalogueRepo struct {
	db *sqlx.DB
}

// NewCatalogueRepo creates a new PostgreSQL-backed CatalogueRepository.
func NewCatalogueRepo(db *sqlx.DB) port.CatalogueRepository {
	return &catalogueRepo{db: db}
}

func (r *catalogueRepo) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	var catalogues []domain.Catalogue
	err := r.db.SelectContext(ctx, &catalogues,
		`SELECT id, name, description
		 FROM catalogues
		 ORDER BY name`)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	err = r.db.SelectContext(ctx, &products,
		`SELECT id, catalogue_id, name, description, price
		 FROM products
		 ORDER BY catalogue_id, name`)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(catalogues))
	for i := range catalogues {
		byID[catalogues[i].ID] = i
	}
	for _, p := range products {
		if i, ok := byID[p.CatalogueID]; ok {
			catalogues[i].Products = append(catalogues[i].Products, p)
		}
	}
	return catalogues, nil
}

func (r *catalogueRepo) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product,
		`SELECT id, catalogue_id, name, description, price
		 FROM products
		 WHERE id = $1`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
