package commands

import (
	"context"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer creation.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	ids        customer.IDProvider
}

// NewCreateCustomerCommandHandler creates a handler for customer creation operations.
// Requires a CustomerUoWFactory for transactional persistence and an identifier
// provider for new customers.
func NewCreateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	ids customer.IDProvider,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the customer creation command.
// Creates a new customer with a provider-issued identifier and persists it.
// Returns the identifier of the created customer.
func (h CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (customer.ID, error) {
	if err := cmd.Validate(); err != nil {
		return customer.ID{}, err
	}

	newCustomer, err := customer.NewCustomer(h.ids)
	if err != nil {
		return customer.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return customer.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return customer.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return customer.ID{}, err
	}

	return newCustomer.ID(), nil
}
