package ports

import (
	"context"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// The core consumes customers only at order-creation time, so the contract
// is deliberately narrow.
type CustomerRepository interface {
	// Get retrieves a customer by its identifier.
	Get(ctx context.Context, id customer.ID) (*customer.Customer, error)

	// Add persists a new customer. The customer must not already exist.
	Add(ctx context.Context, c *customer.Customer) error
}
