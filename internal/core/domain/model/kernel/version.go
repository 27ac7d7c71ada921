package kernel

import (
	"strconv"

	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

// Version is an opaque, per-entity-kind revision stamp used for optimistic
// concurrency control. Every stored entity carries one; a write is rejected
// when the stored stamp no longer matches the stamp the writer last read.
//
// The phantom type parameter T keeps stamps of different entity kinds from
// being mixed up, the same way ID tags identifiers.
//
// A Version starts at InitialVersion on creation and is advanced exactly once
// per successful persisted write, by the storage adapter. Mutating an
// aggregate in memory never changes its version. Clients should treat the
// value as inert: pass it through and compare for equality, never construct
// or interpret it.
//
// The zero value is invalid and must be constructed with InitialVersion or
// RestoreVersion.
type Version[T any] struct {
	value uint64
}

// InitialVersion returns the stamp every brand-new entity of kind T starts
// with.
func InitialVersion[T any]() Version[T] {
	return Version[T]{value: 1}
}

// RestoreVersion reconstructs a stamp from its stored representation.
// Used by storage adapters; the zero counter is rejected.
func RestoreVersion[T any](value uint64) (Version[T], error) {
	v := Version[T]{value: value}
	if err := v.Validate(); err != nil {
		return Version[T]{}, err
	}
	return v, nil
}

// IsEqual reports whether two stamps match. The store uses this to detect
// conflicting concurrent writes.
func (v Version[T]) IsEqual(other Version[T]) bool {
	return v.value == other.value
}

// Next returns the stamp for the revision after this one. Only storage
// adapters call this, as part of a successful write; aggregate logic never
// advances versions.
func (v Version[T]) Next() Version[T] {
	return Version[T]{value: v.value + 1}
}

// UInt64 returns the raw counter for storage adapters.
func (v Version[T]) UInt64() uint64 {
	return v.value
}

// Validate rejects the zero value.
func (v Version[T]) Validate() error {
	if v.value == 0 {
		return errs.NewVersionIsInvalidError("version must be created via InitialVersion or RestoreVersion")
	}
	return nil
}

// String returns the decimal form of the stamp.
func (v Version[T]) String() string {
	return strconv.FormatUint(v.value, 10)
}

// MarshalText implements encoding.TextMarshaler with the decimal form.
func (v Version[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the decimal
// form produced by MarshalText.
func (v *Version[T]) UnmarshalText(text []byte) error {
	value, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return errs.NewVersionIsInvalidErrorWithCause("version", err)
	}
	restored, err := RestoreVersion[T](value)
	if err != nil {
		return err
	}
	*v = restored
	return nil
}
