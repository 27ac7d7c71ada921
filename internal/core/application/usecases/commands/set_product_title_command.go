package commands

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/guard"
)

var (
	ErrSetProductTitleCommandIsNotConstructed = errors.New(
		"SetProductTitleCommand must be created via NewSetProductTitleCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// SetProductTitleCommand represents a request to rename an existing product.
type SetProductTitleCommand struct { //nolint:recvcheck //using for validation
	productID product.ID
	title     string

	guard guard.ConstructorGuard
}

// NewSetProductTitleCommand creates a command to rename a product.
// Validates that the product ID is constructed and the title is not empty.
func NewSetProductTitleCommand(productID product.ID, title string) (SetProductTitleCommand, error) {
	titleCommand := SetProductTitleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		titleCommand.setProductID(productID),
		titleCommand.setTitle(title),
	); err != nil {
		return SetProductTitleCommand{}, err
	}

	return titleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetProductTitleCommandIsNotConstructed if validation fails.
func (c SetProductTitleCommand) Validate() error {
	return c.guard.Validate(ErrSetProductTitleCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being renamed.
func (c SetProductTitleCommand) ProductID() product.ID {
	return c.productID
}

// Title returns the new product title.
func (c SetProductTitleCommand) Title() string {
	return c.title
}

func (c *SetProductTitleCommand) setProductID(productID product.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *SetProductTitleCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
