package queries_test

import (
	"testing"

	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/queries"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductQuery_Valid(t *testing.T) {
	productID := kernel.NewID[product.Product]()

	query, err := queries.NewGetProductQuery(productID)
	require.NoError(t, err)

	assert.Equal(t, productID, query.ProductID())
	require.NoError(t, query.Validate())
}

func TestNewGetProductQuery_InvalidProductID(t *testing.T) {
	query, err := queries.NewGetProductQuery(product.ID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, queries.GetProductQuery{}, query)
}

func TestGetProductQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProductQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProductQueryIsNotConstructed)
}
