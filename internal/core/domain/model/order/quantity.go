package order

import (
	"fmt"

	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

// Quantity is a validated order item quantity. The zero value is invalid;
// quantities are always at least 1.
type Quantity struct {
	value int
}

// NewQuantity validates and wraps a raw quantity.
func NewQuantity(value int) (Quantity, error) {
	if value < 1 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return Quantity{value: value}, nil
}

// Value returns the raw quantity.
func (q Quantity) Value() int {
	return q.value
}

// Validate rejects the zero value.
func (q Quantity) Validate() error {
	if q.value < 1 {
		return errs.NewValueIsInvalidError("quantity must be created via NewQuantity")
	}
	return nil
}
