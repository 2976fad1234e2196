// Package tx defines the transaction boundary used by domain services.
package tx

import "context"

// Manager runs a function within a database transaction.
// The transaction is carried through the context so repositories
// called inside fn share it.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
