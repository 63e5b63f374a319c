package host

import (
	"context"
	"time"
)

// Contract is a set of entry points operating on a state of type S.
type Contract[S any] interface {
	// Name identifies the contract. An instance created for one contract can't be reused by another.
	Name() string
	// Init prepares the empty state of a new instance.
	Init(ctx context.Context, ictx *InitContext, state S) error
	EntryPoints() []EntryPoint[S]
}

// EntryPoint is a named call into the contract.
// Mutable entry points run inside a state transaction and may emit events.
type EntryPoint[S any] struct {
	Name    string
	Mutable bool
	Handler func(ctx context.Context, rctx *ReceiveContext, state S) ([]byte, error)
}

// Instance describes a contract instance created by [Host.Init].
type Instance struct {
	Contract  string
	Version   string
	CreatedAt time.Time
}

// StateTx finalizes the state changes made through the state returned by [StateStore.BeginTx].
type StateTx interface {
	Commit(ctx context.Context) error
	// Rollback must be safe to call after Commit.
	Rollback(ctx context.Context) error
}

// StateStore persists the state of one contract instance.
type StateStore[S any] interface {
	// State returns a view of the committed state for read-only calls.
	State() S
	BeginTx(ctx context.Context) (S, StateTx, error)
	// Instance returns errs.NotFound if the instance hasn't been created yet.
	Instance(ctx context.Context) (Instance, error)
	CreateInstance(ctx context.Context, instance Instance) error
}

type InitContext struct {
	Instance Instance
}
