// Package productrepo provides data transfer objects and mapping functions for product persistence.
package productrepo

import (
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version uint64    `gorm:"not null"`
	Title   string    `gorm:"type:varchar(255);not null"`
	Price   float64   `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:      p.ID().UUID(),
		Version: p.Version().UInt64(),
		Title:   p.Title(),
		Price:   p.Price(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.IDFromUUID[product.Product](dto.ID)
	if err != nil {
		return nil, err
	}

	version, err := kernel.RestoreVersion[product.Product](dto.Version)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, version, dto.Title, dto.Price)
}
