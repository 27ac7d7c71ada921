package queries

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product.
//
// Example:
//
//	query, err := NewGetProductQuery(productID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetProductQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get product: %w", err)
//	}
//	fmt.Printf("Product %s costs %.2f\n", resp.Title, resp.Price)
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID product.ID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for a single product.
// Validates that the product ID is a constructed identifier.
func NewGetProductQuery(productID product.ID) (GetProductQuery, error) {
	productQuery := GetProductQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := productQuery.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}

	return productQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductQueryIsNotConstructed if validation fails.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (q GetProductQuery) ProductID() product.ID {
	return q.productID
}

func (q *GetProductQuery) setProductID(productID product.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}

// GetProductQueryResponse represents one catalog product for presentation.
type GetProductQueryResponse struct {
	ID    product.ID
	Title string
	Price float64
}
