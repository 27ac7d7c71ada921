package commands

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/guard"
)

var (
	ErrSetProductCommandIsNotConstructed = errors.New(
		"SetProductCommand must be created via NewSetProductCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("price must be greater than 0")
)

// SetProductCommand represents a request to create a product or overwrite an
// existing one. The caller supplies the identifier, which makes the operation
// an upsert: repeated commands with the same ID converge on the same product.
type SetProductCommand struct { //nolint:recvcheck //using for validation
	productID product.ID
	title     string
	price     float64

	guard guard.ConstructorGuard
}

// NewSetProductCommand creates a command to create or overwrite a product.
// Validates that the product ID is constructed, the title is not empty, and
// the price is positive.
func NewSetProductCommand(productID product.ID, title string, price float64) (SetProductCommand, error) {
	productCommand := SetProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setTitle(title),
		productCommand.setPrice(price),
	); err != nil {
		return SetProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetProductCommandIsNotConstructed if validation fails.
func (c SetProductCommand) Validate() error {
	return c.guard.Validate(ErrSetProductCommandIsNotConstructed)
}

// ProductID returns the identifier the product should live under.
func (c SetProductCommand) ProductID() product.ID {
	return c.productID
}

// Title returns the product title.
func (c SetProductCommand) Title() string {
	return c.title
}

// Price returns the product price.
func (c SetProductCommand) Price() float64 {
	return c.price
}

func (c *SetProductCommand) setProductID(productID product.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *SetProductCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *SetProductCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
