package datagateway

import "context"

type Tx interface {
	// Commit persists the changes made since the transaction began. It is a no-op without an active transaction.
	Commit(ctx context.Context) error
	// Rollback discards the changes made since the transaction began.
	// It is safe to call without an active transaction, so a deferred Rollback after Commit is fine.
	Rollback(ctx context.Context) error
}
