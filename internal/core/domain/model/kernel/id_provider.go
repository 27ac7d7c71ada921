package kernel

// IDProvider is the source of identifiers the rest of the system depends on,
// rather than the generator directly, so tests can supply deterministic,
// pre-chosen identifiers.
//
// Two implementations ship with the kernel: NextIDProvider mints a fresh
// random identifier per call, and ID itself is a provider that returns its own
// value.
type IDProvider[T any] interface {
	// NextID produces (or returns) the identifier to use for a new entity
	// of kind T.
	NextID() (ID[T], error)
}

// NextIDProvider mints a fresh random identifier on every call.
// This is the production provider.
type NextIDProvider[T any] struct{}

// NewNextIDProvider creates a generating provider for entity kind T.
func NewNextIDProvider[T any]() NextIDProvider[T] {
	return NextIDProvider[T]{}
}

// NextID returns a freshly minted random identifier.
func (NextIDProvider[T]) NextID() (ID[T], error) {
	return NewID[T](), nil
}

// NextID makes a known identifier usable as an IDProvider: it returns the ID
// itself. A zero-value ID fails, which surfaces as a provider failure to the
// caller.
func (u ID[T]) NextID() (ID[T], error) {
	if err := u.Validate(); err != nil {
		return ID[T]{}, err
	}
	return u, nil
}
