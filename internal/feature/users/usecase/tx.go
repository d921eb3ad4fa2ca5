package usecase

import "context"

// TxManager brackets a function in a single database transaction.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
//
// Do commits when fn returns nil and rolls back when fn returns an
// error or the context is cancelled. The transactional handle travels
// inside the context passed to fn; repositories pick it up there.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
