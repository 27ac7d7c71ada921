package ports

import (
	"context"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id product.ID) (*product.Product, error)

	// Add persists a new product. The product must not already exist.
	Add(ctx context.Context, p *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, p *product.Product) error
}
