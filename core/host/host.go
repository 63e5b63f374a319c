package host

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/core/eventlog"
	"github.com/gaze-network/realpay-receipts/pkg/bufferpool"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/samber/lo"
)

// MaxParameterSize is the largest accepted parameter, in bytes.
const MaxParameterSize = 65535

// ErrClosed is returned by calls made after Shutdown.
var ErrClosed = errors.New("host is shut down")

// Call is a request to run one entry point.
type Call struct {
	EntryPoint string
	Parameter  []byte
	Invoker    string
}

// Invocation is the result of a successful call.
type Invocation struct {
	Sequence    uint64
	Hash        chainhash.Hash
	EntryPoint  string
	ReturnValue []byte
	Events      []eventlog.Event
	Timestamp   time.Time
}

// Host runs the entry points of a single contract instance, one call at a time.
type Host[S any] struct {
	contract    Contract[S]
	store       StateStore[S]
	sink        eventlog.Sink
	entryPoints map[string]EntryPoint[S]
	version     string
	now         func() time.Time

	mu       sync.Mutex
	instance *Instance
	sequence uint64
	closed   bool
}

type Option func(*options)

type options struct {
	version string
	now     func() time.Time
}

// WithVersion sets the version recorded on newly created instances.
func WithVersion(version string) Option {
	return func(o *options) { o.version = version }
}

// WithClock overrides the clock used for instance and invocation timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New[S any](contract Contract[S], store StateStore[S], sink eventlog.Sink, opts ...Option) *Host[S] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if sink == nil {
		sink = eventlog.NopSink
	}
	return &Host[S]{
		contract: contract,
		store:    store,
		sink:     sink,
		entryPoints: lo.SliceToMap(contract.EntryPoints(), func(ep EntryPoint[S]) (string, EntryPoint[S]) {
			return ep.Name, ep
		}),
		version: o.version,
		now:     o.now,
	}
}

func (h *Host[S]) Contract() string {
	return h.contract.Name()
}

// EntryPoints returns the names of all entry points.
func (h *Host[S]) EntryPoints() []string {
	return lo.Map(h.contract.EntryPoints(), func(ep EntryPoint[S], _ int) string { return ep.Name })
}

// Instance returns the active instance, if initialized.
func (h *Host[S]) Instance() (Instance, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.instance == nil {
		return Instance{}, false
	}
	return *h.instance, true
}

// Init creates the contract instance and runs the contract's Init, or attaches
// to the existing instance. An existing instance of another contract is errs.ConflictSetting.
func (h *Host[S]) Init(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errors.WithStack(ErrClosed)
	}

	ctx = logger.WithContext(ctx, slogx.String("package", "host"), slogx.String("contract", h.contract.Name()))

	existing, err := h.store.Instance(ctx)
	switch {
	case err == nil:
		if existing.Contract != h.contract.Name() {
			return errors.Wrapf(errs.ConflictSetting, "state belongs to contract %q, not %q", existing.Contract, h.contract.Name())
		}
		h.instance = &existing
		logger.InfoContext(ctx, "Attached to existing contract instance",
			slogx.String("instance_version", existing.Version),
			slogx.Time("created_at", existing.CreatedAt),
		)
		return nil
	case errors.Is(err, errs.NotFound):
	default:
		return errors.Wrap(err, "failed to get contract instance")
	}

	instance := Instance{
		Contract:  h.contract.Name(),
		Version:   h.version,
		CreatedAt: h.now().UTC(),
	}
	state, tx, err := h.store.BeginTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin state transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to rollback state transaction", slogx.Error(err))
		}
	}()

	if err := h.contract.Init(ctx, &InitContext{Instance: instance}, state); err != nil {
		return errors.Wrap(err, "contract init failed")
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit state transaction")
	}
	if err := h.store.CreateInstance(ctx, instance); err != nil {
		return errors.Wrap(err, "failed to create contract instance")
	}

	h.instance = &instance
	logger.InfoContext(ctx, "Created contract instance", slogx.String("instance_version", instance.Version))
	return nil
}

// Invoke runs call to completion. A failed mutable call leaves the state untouched
// and publishes no events.
func (h *Host[S]) Invoke(ctx context.Context, call Call) (*Invocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(call.Parameter) > MaxParameterSize {
		return nil, errors.Wrapf(errs.InvalidArgument, "parameter size %d exceeds limit %d", len(call.Parameter), MaxParameterSize)
	}
	ep, ok := h.entryPoints[call.EntryPoint]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "entrypoint %q of contract %q", call.EntryPoint, h.contract.Name())
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, errors.WithStack(ErrClosed)
	}
	if h.instance == nil {
		return nil, errors.Wrap(errs.NotFound, "contract instance not initialized")
	}

	seq := h.sequence + 1
	hash := invocationHash(h.contract.Name(), call.EntryPoint, call.Parameter, seq)
	ctx = logger.WithContext(ctx,
		slogx.String("package", "host"),
		slogx.String("entrypoint", call.EntryPoint),
		slogx.Uint64("sequence", seq),
	)

	rctx := &ReceiveContext{
		entryPoint: call.EntryPoint,
		invoker:    call.Invoker,
		parameter:  call.Parameter,
		mutable:    ep.Mutable,
	}
	start := time.Now()
	ret, err := h.run(ctx, ep, rctx)
	if err != nil {
		logger.DebugContext(ctx, "Invocation failed", slogx.Error(err))
		return nil, errors.WithStack(err)
	}
	h.sequence = seq

	ts := h.now().UTC()
	events := make([]eventlog.Event, 0, len(rctx.events))
	for i, e := range rctx.events {
		events = append(events, eventlog.Event{
			Contract:       h.contract.Name(),
			EntryPoint:     call.EntryPoint,
			InvocationHash: hash,
			Sequence:       seq,
			Index:          i,
			Tag:            e.tag,
			Data:           e.data,
			Payload:        e.payload,
			Timestamp:      ts,
		})
	}
	if len(events) > 0 {
		// state is already committed, a sink failure can't undo the call
		if err := h.sink.Append(ctx, events); err != nil {
			logger.ErrorContext(ctx, "Failed to publish contract events", slogx.Int("events", len(events)), slogx.Error(err))
		}
	}

	logger.DebugContext(ctx, "Invocation completed",
		slogx.Stringer("hash", hash),
		slogx.Int("events", len(events)),
		slogx.Duration("latency", time.Since(start)),
	)
	return &Invocation{
		Sequence:    seq,
		Hash:        hash,
		EntryPoint:  call.EntryPoint,
		ReturnValue: ret,
		Events:      events,
		Timestamp:   ts,
	}, nil
}

func (h *Host[S]) run(ctx context.Context, ep EntryPoint[S], rctx *ReceiveContext) ([]byte, error) {
	if !ep.Mutable {
		ret, err := ep.Handler(ctx, rctx, h.store.State())
		return ret, errors.WithStack(err)
	}

	state, tx, err := h.store.BeginTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin state transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to rollback state transaction", slogx.Error(err))
		}
	}()

	ret, err := ep.Handler(ctx, rctx, state)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit state transaction")
	}
	return ret, nil
}

// Shutdown waits for the running call, if any, and rejects further calls.
func (h *Host[S]) Shutdown() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

// invocationHash is the double SHA-256 of contract, entrypoint and parameter
// (each u32 length-prefixed) followed by the u64 sequence number.
func invocationHash(contract, entryPoint string, parameter []byte, seq uint64) chainhash.Hash {
	buf := bufferpool.Get()
	defer buf.Release()

	var scratch [8]byte
	for _, part := range [][]byte{[]byte(contract), []byte(entryPoint), parameter} {
		binary.LittleEndian.PutUint32(scratch[:4], uint32(len(part)))
		buf.Write(scratch[:4])
		buf.Write(part)
	}
	binary.LittleEndian.PutUint64(scratch[:], seq)
	buf.Write(scratch[:])
	return chainhash.DoubleHashH(buf.Bytes())
}
