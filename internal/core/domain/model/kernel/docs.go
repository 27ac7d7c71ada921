// Package kernel provides core domain primitives for the shop system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - ID: a phantom-tagged value object for unique, typed entity identifiers
//   - IDProvider: a replaceable source of identifiers, random or fixed
//   - Version: an opaque revision stamp used for optimistic concurrency checks
//   - Entity: the capability contract every aggregate type satisfies
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
