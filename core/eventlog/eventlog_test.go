package eventlog

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/pkg/reportingclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func events(tags ...string) []Event {
	out := make([]Event, 0, len(tags))
	for i, tag := range tags {
		out = append(out, Event{Tag: tag, Sequence: uint64(i + 1)})
	}
	return out
}

func TestMemorySink(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		sink := NewMemorySink(10)
		require.NoError(t, sink.Append(ctx, events("a", "b", "c")))

		recent := sink.Recent(2, "")
		require.Len(t, recent, 2)
		assert.EqualValues(t, 3, recent[0].Sequence)
		assert.EqualValues(t, 2, recent[1].Sequence)
	})
	t.Run("ring overwrites oldest", func(t *testing.T) {
		sink := NewMemorySink(3)
		for i := 0; i < 5; i++ {
			require.NoError(t, sink.Append(ctx, []Event{{Sequence: uint64(i)}}))
		}
		assert.Equal(t, 3, sink.Len())

		recent := sink.Recent(10, "")
		seqs := make([]uint64, 0, len(recent))
		for _, e := range recent {
			seqs = append(seqs, e.Sequence)
		}
		assert.Equal(t, []uint64{4, 3, 2}, seqs)
	})
	t.Run("filter by tag", func(t *testing.T) {
		sink := NewMemorySink(10)
		require.NoError(t, sink.Append(ctx, events("a", "b", "a")))

		recent := sink.Recent(10, "a")
		require.Len(t, recent, 2)
		assert.EqualValues(t, 3, recent[0].Sequence)
		assert.EqualValues(t, 1, recent[1].Sequence)
	})
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, NewMemorySink(5).Recent(5, ""))
	})
	t.Run("negative n", func(t *testing.T) {
		sink := NewMemorySink(5)
		require.NoError(t, sink.Append(ctx, events("a")))
		assert.Empty(t, sink.Recent(-1, ""))
	})
}

func TestMultiSink(t *testing.T) {
	t.Parallel()
	var got [][]Event
	ok := SinkFunc(func(_ context.Context, e []Event) error {
		got = append(got, e)
		return nil
	})
	failing := SinkFunc(func(context.Context, []Event) error {
		return errors.New("boom")
	})

	err := MultiSink{ok, nil, failing, ok}.Append(context.Background(), events("x"))
	assert.ErrorContains(t, err, "boom")
	assert.Len(t, got, 2)
}

type fakeReporter struct {
	mu       sync.Mutex
	payloads []reportingclient.SubmitEventReportPayload
	err      error
	release  chan struct{} // if set, each submit waits for it
}

func (f *fakeReporter) SubmitEventReport(_ context.Context, p reportingclient.SubmitEventReportPayload) error {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, p)
	return f.err
}

func (f *fakeReporter) delivered() []reportingclient.SubmitEventReportPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payloads
}

func TestReportingSink(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("delivers in order", func(t *testing.T) {
		reporter := &fakeReporter{err: fmt.Errorf("unreachable")}
		sink := NewReportingSink(reporter, 8)

		e := Event{Contract: "realpay", Tag: "ReceiptEmitted", Data: []byte{0xab}, Payload: map[string]string{"id": "r1"}}
		require.NoError(t, sink.Append(ctx, []Event{e}), "delivery failures must not propagate")
		require.NoError(t, sink.Append(ctx, events("a", "b")))
		require.NoError(t, sink.Close())

		got := reporter.delivered()
		require.Len(t, got, 3)
		assert.Equal(t, "ab", got[0].Data)
		assert.JSONEq(t, `{"id":"r1"}`, string(got[0].Payload))
		assert.Equal(t, "a", got[1].Tag)
		assert.Equal(t, "b", got[2].Tag)
	})
	t.Run("append does not wait for the collector", func(t *testing.T) {
		reporter := &fakeReporter{release: make(chan struct{})}
		sink := NewReportingSink(reporter, 8)

		appended := make(chan error, 1)
		go func() { appended <- sink.Append(ctx, events("a", "b")) }()
		select {
		case err := <-appended:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("append waited for event delivery")
		}
		assert.Empty(t, reporter.delivered())

		close(reporter.release)
		require.NoError(t, sink.Close())
		assert.Len(t, reporter.delivered(), 2)
	})
	t.Run("full queue drops events", func(t *testing.T) {
		reporter := &fakeReporter{release: make(chan struct{})}
		sink := NewReportingSink(reporter, 1)

		require.NoError(t, sink.Append(ctx, events("a", "b", "c")))
		close(reporter.release)
		require.NoError(t, sink.Close())

		got := reporter.delivered()
		assert.NotEmpty(t, got)
		assert.Less(t, len(got), 3)
		assert.Equal(t, "a", got[0].Tag)
	})
	t.Run("closed sink drops events", func(t *testing.T) {
		reporter := &fakeReporter{}
		sink := NewReportingSink(reporter, 0)
		require.NoError(t, sink.Close())
		require.NoError(t, sink.Close())

		require.NoError(t, sink.Append(ctx, events("a")))
		assert.Empty(t, reporter.delivered())
	})
}
