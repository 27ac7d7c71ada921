package commands

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/guard"
)

var (
	ErrAddOrUpdateProductCommandIsNotConstructed = errors.New(
		"AddOrUpdateProductCommand must be created via NewAddOrUpdateProductCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddOrUpdateProductCommand represents a request to put a product into an order.
// If the order already contains the product, its quantity is replaced with the
// requested one; otherwise a new line item is added at the product's current price.
//
// Example:
//
//	cmd, err := NewAddOrUpdateProductCommand(orderID, productID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewAddOrUpdateProductCommandHandler(uowFactory, lineItemIDs)
//	lineItemID, err := handler.Handle(ctx, cmd)
type AddOrUpdateProductCommand struct { //nolint:recvcheck //using for validation
	orderID   order.ID
	productID product.ID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrUpdateProductCommand creates a command to add a product to an order
// or to change its quantity. Validates that both identifiers are constructed
// and that quantity is positive.
func NewAddOrUpdateProductCommand(
	orderID order.ID,
	productID product.ID,
	quantity int,
) (AddOrUpdateProductCommand, error) {
	productCommand := AddOrUpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setOrderID(orderID),
		productCommand.setProductID(productID),
		productCommand.setQuantity(quantity),
	); err != nil {
		return AddOrUpdateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrUpdateProductCommandIsNotConstructed if validation fails.
func (c AddOrUpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrAddOrUpdateProductCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being modified.
func (c AddOrUpdateProductCommand) OrderID() order.ID {
	return c.orderID
}

// ProductID returns the identifier of the product to add or update.
func (c AddOrUpdateProductCommand) ProductID() product.ID {
	return c.productID
}

// Quantity returns the requested quantity for the product.
func (c AddOrUpdateProductCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrUpdateProductCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrUpdateProductCommand) setProductID(productID product.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrUpdateProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
