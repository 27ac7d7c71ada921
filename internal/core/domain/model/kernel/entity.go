package kernel

// Entity is the capability contract every aggregate and owned entity type
// satisfies: it exposes its typed identifier and its version stamp. Store and
// adapter code generic over "any entity" is written against this interface
// instead of being duplicated per type.
//
// It is a read-side contract, not a shared base: implementations do not share
// state or behavior through it. Domain failures are reported through the errs
// taxonomy rather than a per-entity error type.
type Entity[T any] interface {
	// EntityID returns the identifier of the entity.
	EntityID() ID[T]

	// EntityVersion returns the version stamp the entity was loaded with
	// (or the initial stamp for a new entity).
	EntityVersion() Version[T]
}
