package commands_test

import (
	"testing"

	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/commands"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrUpdateProductCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewID[order.Order]()
	productID := kernel.NewID[product.Product]()

	cmd, err := commands.NewAddOrUpdateProductCommand(orderID, productID, 3)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ProductID().IsEqual(productID))
	assert.Equal(t, 3, cmd.Quantity())
	assert.NoError(t, cmd.Validate())
}

func TestNewAddOrUpdateProductCommand_InvalidQuantity(t *testing.T) {
	orderID := kernel.NewID[order.Order]()
	productID := kernel.NewID[product.Product]()

	for _, quantity := range []int{0, -1, -100} {
		_, err := commands.NewAddOrUpdateProductCommand(orderID, productID, quantity)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	}
}

func TestNewAddOrUpdateProductCommand_QuantityOfOneIsAllowed(t *testing.T) {
	cmd, err := commands.NewAddOrUpdateProductCommand(
		kernel.NewID[order.Order](),
		kernel.NewID[product.Product](),
		1,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.Quantity())
}

func TestNewAddOrUpdateProductCommand_InvalidIdentifiers(t *testing.T) {
	_, err := commands.NewAddOrUpdateProductCommand(order.ID{}, product.ID{}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddOrUpdateProductCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewAddOrUpdateProductCommand(order.ID{}, product.ID{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestAddOrUpdateProductCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AddOrUpdateProductCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrAddOrUpdateProductCommandIsNotConstructed)
}
