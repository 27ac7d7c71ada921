// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
package customerrepo

import (
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version uint64    `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().UUID(),
		Version: c.Version().UInt64(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.IDFromUUID[customer.Customer](dto.ID)
	if err != nil {
		return nil, err
	}

	version, err := kernel.RestoreVersion[customer.Customer](dto.Version)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, version)
}
