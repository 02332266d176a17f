// Package memory provides in-process implementations of the persistence
// ports. The catalogue repository ships with a built-in product set so
// the server works with no database configured.
package memory

import (
	"context"

	"billforge/internal/domain"
	"billforge/internal/port"
)

// builtinCatalogues is the default product set served when no database
// is wired in.
var builtinCatalogues = []domain.Catalogue{
	{
		ID:          "office-supplies",
		Name:        "Office Supplies",
		Description: "Essential office items",
		Products: []domain.Product{
			{ID: "notebook-a4", CatalogueID: "office-supplies", Name: "Notebook A4", Description: "Premium quality notebook", Price: 150},
			{ID: "pen-set", CatalogueID: "office-supplies", Name: "Pen Set", Description: "Ball point pens - pack of 10", Price: 200},
			{ID: "stapler", CatalogueID: "office-supplies", Name: "Stapler", Description: "Heavy duty stapler", Price: 350},
		},
	},
	{
		ID:          "electronics",
		Name:        "Electronics",
		Description: "Tech products and accessories",
		Products: []domain.Product{
			{ID: "usb-cable", CatalogueID: "electronics", Name: "USB Cable", Description: "Type-C 2m cable", Price: 500},
			{ID: "mouse-pad", CatalogueID: "electronics", Name: "Mouse Pad", Description: "Gaming mouse pad", Price: 800},
			{ID: "keyboard-cover", CatalogueID: "electronics", Name: "Keyboard Cover", Description: "Silicone keyboard protector", Price: 300},
		},
	},
	{
		ID:          "furniture",
		Name:        "Furniture",
		Description: "Office furniture items",
		Products: []domain.Product{
			{ID: "desk-lamp", CatalogueID: "furniture", Name: "Desk Lamp", Description: "LED desk lamp with dimmer", Price: 2500},
			{ID: "chair-cushion", CatalogueID: "furniture", Name: "Chair Cushion", Description: "Ergonomic chair cushion", Price: 1800},
			{ID: "monitor-stand", CatalogueID: "furniture", Name: "Monitor Stand", Description: "Adjustable monitor riser", Price: 3200},
		},
	},
}

type catalogueRepo struct {
	catalogues []domain.Catalogue
}

// NewCatalogueRepo creates an in-memory CatalogueRepository backed by
// the built-in product set.
func NewCatalogueRepo() port.CatalogueRepository {
	return &catalogueRepo{catalogues: builtinCatalogues}
}

func (r *catalogueRepo) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	out := make([]domain.Catalogue, len(r.catalogues))
	copy(out, r.catalogues)
	return out, nil
}

func (r *catalogueRepo) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	for _, c := range r.catalogues {
		for _, p := range c.Products {
			if p.ID == productID {
				product := p
				return &product, nil
			}
		}
	}
	return nil, domain.ErrProductNotFound
}
