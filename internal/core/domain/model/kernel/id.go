package kernel

import (
	"fmt"

	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/google/uuid"
)

// ID is a value object that represents a universally unique, type-tagged
// identifier. It wraps the github.com/google/uuid implementation and carries a
// phantom type parameter T so identifiers of different entity kinds are
// distinct compile-time types even though they share one runtime
// representation: an ID[order.Order] can never be passed where an
// ID[product.Product] is expected, and the two cannot be compared.
//
// T contributes no runtime data. Equality, ordering, hashing, and
// serialization are implemented once here, independent of the tag.
//
// The zero value of ID is invalid and must be constructed with NewID, ParseID,
// or IDFromUUID. ID is immutable, copyable, comparable with ==, and usable as
// a map key.
//
// Example usage:
//
//	// Mint a new random identifier for an order.
//	id := kernel.NewID[order.Order]()
//
//	// Parse the canonical string form back.
//	id, err := kernel.ParseID[order.Order]("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type ID[T any] struct {
	id uuid.UUID
}

// NewID generates a new random identifier (UUID version 4) for the entity kind
// T. Uniqueness is statistical; no coordination with storage is performed.
func NewID[T any]() ID[T] {
	return ID[T]{
		id: uuid.New(),
	}
}

// ParseID parses an identifier from its canonical UUID string form.
// Returns an error classified as errs.ErrValueIsInvalid when the text is not
// a well-formed UUID.
func ParseID[T any](s string) (ID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}
	return ID[T]{id: id}, nil
}

// IDFromUUID wraps an existing uuid.UUID value. Used by storage adapters that
// persist identifiers in their raw form. The nil UUID is rejected.
func IDFromUUID[T any](id uuid.UUID) (ID[T], error) {
	newID := ID[T]{id: id}
	if err := newID.Validate(); err != nil {
		return ID[T]{}, err
	}
	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u ID[T]) String() string {
	return u.id.String()
}

// UUID returns the underlying untagged value for storage adapters.
// Domain code should not need this; it exists so persistence can store the
// raw 128-bit value.
func (u ID[T]) UUID() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers of the same kind carry the same
// underlying 128-bit value.
func (u ID[T]) IsEqual(other ID[T]) bool {
	return u.id == other.id
}

// Compare totally orders identifiers of one kind by their byte representation,
// giving deterministic storage and iteration order. It returns -1, 0, or +1.
func (u ID[T]) Compare(other ID[T]) int {
	for i := range u.id {
		switch {
		case u.id[i] < other.id[i]:
			return -1
		case u.id[i] > other.id[i]:
			return 1
		}
	}
	return 0
}

// Validate rejects the zero value. A valid ID is any ID created through one of
// the constructor functions.
func (u ID[T]) Validate() error {
	if u.id == uuid.Nil {
		return errs.NewValueIsRequiredError("ID must be created via NewID, ParseID, or IDFromUUID")
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical string form.
func (u ID[T]) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the canonical
// string form and failing on malformed input.
func (u *ID[T]) UnmarshalText(text []byte) error {
	parsed, err := ParseID[T](string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
