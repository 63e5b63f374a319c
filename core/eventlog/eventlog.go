// Package eventlog is the append-only side channel that receives the events
// emitted by contract invocations after their state changes are committed.
package eventlog

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
)

type Event struct {
	Contract       string         `json:"contract"`
	EntryPoint     string         `json:"entryPoint"`
	InvocationHash chainhash.Hash `json:"invocationHash"`
	Sequence       uint64         `json:"sequence"`
	Index          int            `json:"index"` // position within the invocation
	Tag            string         `json:"tag"`
	Data           []byte         `json:"data"`              // serialized event
	Payload        any            `json:"payload,omitempty"` // decoded event, if available
	Timestamp      time.Time      `json:"timestamp"`
}

// Sink receives the events of one committed invocation, in emission order.
type Sink interface {
	Append(ctx context.Context, events []Event) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, events []Event) error

func (f SinkFunc) Append(ctx context.Context, events []Event) error {
	return f(ctx, events)
}

// NopSink discards all events.
var NopSink Sink = SinkFunc(func(context.Context, []Event) error { return nil })

// MultiSink appends to every sink and joins their errors.
type MultiSink []Sink

func (m MultiSink) Append(ctx context.Context, events []Event) error {
	var errList []error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.Append(ctx, events); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
