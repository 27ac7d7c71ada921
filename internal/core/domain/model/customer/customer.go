// Package customer provides the customer entity. Customers exist to be
// referenced by orders; the core consumes them only at order-creation time.
package customer

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// ID is the typed identifier for customers.
type ID = kernel.ID[Customer]

// Version is the optimistic-concurrency stamp for customers.
type Version = kernel.Version[Customer]

// IDProvider supplies customer identifiers.
type IDProvider = kernel.IDProvider[Customer]

// Customer is an account that places orders.
type Customer struct {
	id      ID
	version Version

	isConstructed bool
}

// NewCustomer creates a customer with the initial version stamp.
func NewCustomer(idProvider IDProvider) (*Customer, error) {
	id, err := idProvider.NextID()
	if err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		version:       kernel.InitialVersion[Customer](),
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id ID, version Version) (*Customer, error) {
	customer := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setVersion(version),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's identifier.
func (c *Customer) ID() ID {
	return c.id
}

// Version returns the stamp the customer was loaded with.
func (c *Customer) Version() Version {
	return c.version
}

// EntityID implements kernel.Entity.
func (c *Customer) EntityID() ID {
	return c.id
}

// EntityVersion implements kernel.Entity.
func (c *Customer) EntityVersion() Version {
	return c.version
}

func (c *Customer) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setVersion(version Version) error {
	if err := version.Validate(); err != nil {
		return err
	}
	c.version = version
	return nil
}
