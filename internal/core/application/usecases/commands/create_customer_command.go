package commands

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Customers carry no attributes of their own; they exist to own orders.
//
// Example:
//
//	cmd := NewCreateCustomerCommand()
//	handler := NewCreateCustomerCommandHandler(uowFactory, kernel.NewNextIDProvider[customer.Customer]())
//	customerID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create customer: %w", err)
//	}
type CreateCustomerCommand struct {
	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
func NewCreateCustomerCommand() CreateCustomerCommand {
	return CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c *CreateCustomerCommand) Validate() error {
	return c.guard.Validate(
		ErrCreateCustomerCommandIsNotConstructed,
	)
}
