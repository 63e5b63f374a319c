package eventlog

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gaze-network/realpay-receipts/pkg/reportingclient"
)

// DefaultReportingQueueSize is the number of events a ReportingSink buffers before dropping.
const DefaultReportingQueueSize = 1024

// EventReporter is implemented by *reportingclient.ReportingClient.
type EventReporter interface {
	SubmitEventReport(ctx context.Context, payload reportingclient.SubmitEventReportPayload) error
}

type report struct {
	ctx     context.Context
	payload reportingclient.SubmitEventReportPayload
}

// ReportingSink forwards events to a collector from a single background worker,
// in append order. Append never waits on the collector: when the queue is full the
// event is dropped. Delivery failures are logged and dropped.
type ReportingSink struct {
	reporter EventReporter
	queue    chan report
	done     chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewReportingSink(reporter EventReporter, queueSize int) *ReportingSink {
	if queueSize < 1 {
		queueSize = DefaultReportingQueueSize
	}
	r := &ReportingSink{
		reporter: reporter,
		queue:    make(chan report, queueSize),
		done:     make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *ReportingSink) Append(ctx context.Context, events []Event) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		logger.WarnContext(ctx, "Reporting sink is closed, dropping contract events", slogx.Int("events", len(events)))
		return nil
	}

	// the worker outlives the call, keep the logger attributes but not the deadline
	ctx = context.WithoutCancel(ctx)
	for _, e := range events {
		select {
		case r.queue <- report{ctx: ctx, payload: reportPayload(e)}:
		default:
			logger.WarnContext(ctx, "Reporting queue is full, dropping contract event",
				slogx.String("event", "report_event_dropped"),
				slogx.String("tag", e.Tag),
				slogx.Uint64("sequence", e.Sequence),
			)
		}
	}
	return nil
}

// Close stops accepting events and waits until the queued ones are delivered.
func (r *ReportingSink) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	<-r.done
	return nil
}

func (r *ReportingSink) run() {
	defer close(r.done)
	for rp := range r.queue {
		if err := r.reporter.SubmitEventReport(rp.ctx, rp.payload); err != nil {
			logger.WarnContext(rp.ctx, "Failed to report contract event",
				slogx.String("event", "report_event_failed"),
				slogx.String("tag", rp.payload.Tag),
				slogx.Uint64("sequence", rp.payload.Sequence),
				slogx.Error(err),
			)
		}
	}
}

func reportPayload(e Event) reportingclient.SubmitEventReportPayload {
	payload := reportingclient.SubmitEventReportPayload{
		Contract:       e.Contract,
		EntryPoint:     e.EntryPoint,
		InvocationHash: e.InvocationHash.String(),
		Sequence:       e.Sequence,
		Index:          e.Index,
		Tag:            e.Tag,
		Data:           hex.EncodeToString(e.Data),
		Timestamp:      e.Timestamp.Unix(),
	}
	if e.Payload != nil {
		if raw, err := json.Marshal(e.Payload); err == nil {
			payload.Payload = raw
		}
	}
	return payload
}
