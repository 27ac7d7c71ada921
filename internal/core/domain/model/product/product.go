// Package product provides the product catalog entity. A product carries a
// title and a current price; orders capture that price into line items at
// add time, so later price changes never rewrite history.
package product

import (
	"errors"
	"fmt"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// ID is the typed identifier for products.
type ID = kernel.ID[Product]

// Version is the optimistic-concurrency stamp for products.
type Version = kernel.Version[Product]

// IDProvider supplies product identifiers.
type IDProvider = kernel.IDProvider[Product]

// Product is a catalog entry. Invariants:
//   - Must have a valid identifier and version stamp
//   - Title must not be empty
//   - Price must be greater than 0
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id      ID
	version Version
	title   string
	price   float64

	isConstructed bool
}

// NewProduct creates a product with the initial version stamp.
// The identifier comes from the supplied provider so tests can fix it.
func NewProduct(idProvider IDProvider, title string, price float64) (*Product, error) {
	id, err := idProvider.NextID()
	if err != nil {
		return nil, err
	}

	product := &Product{
		id:            id,
		version:       kernel.InitialVersion[Product](),
		isConstructed: true,
	}

	if err := errors.Join(
		product.SetTitle(title),
		product.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from persistence. All fields are
// validated; storage adapters are the only intended caller.
func RestoreProduct(id ID, version Version, title string, price float64) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setVersion(version),
		product.SetTitle(title),
		product.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's identifier.
func (p *Product) ID() ID {
	return p.id
}

// Version returns the stamp the product was loaded with.
func (p *Product) Version() Version {
	return p.version
}

// Title returns the product's display title.
func (p *Product) Title() string {
	return p.title
}

// Price returns the product's current unit price.
func (p *Product) Price() float64 {
	return p.price
}

// SetTitle replaces the product's title. The title must not be empty.
func (p *Product) SetTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

// SetPrice replaces the product's current price. The price must be positive.
func (p *Product) SetPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}

// EntityID implements kernel.Entity.
func (p *Product) EntityID() ID {
	return p.id
}

// EntityVersion implements kernel.Entity.
func (p *Product) EntityVersion() Version {
	return p.version
}

func (p *Product) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setVersion(version Version) error {
	if err := version.Validate(); err != nil {
		return err
	}
	p.version = version
	return nil
}
