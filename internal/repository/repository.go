package repository

import (
	"context"

	"trackhub/internal/model"
)

// CatalogRepository defines read access to the products table. The
// table is the system's only persistent input; there is no write path.
type CatalogRepository interface {
	// LoadAll retrieves every product row in insertion order.
	LoadAll(ctx context.Context) ([]model.Product, error)
}
