package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command
// invocation. This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary: all reads and writes
// made through its repositories share one transaction, and staged writes
// become visible to external readers atomically at Commit or not at all.
// Client code must explicitly manage the transaction lifecycle and must
// release it on every exit path (the usual shape is Begin followed by a
// deferred Rollback, with Commit on the success path).
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository
}
