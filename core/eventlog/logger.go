package eventlog

import (
	"context"
	"encoding/hex"

	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
)

// LoggerSink writes one structured log line per event.
type LoggerSink struct{}

func (LoggerSink) Append(ctx context.Context, events []Event) error {
	for _, e := range events {
		logger.InfoContext(ctx, "Contract event emitted",
			slogx.String("event", "contract_event"),
			slogx.String("contract", e.Contract),
			slogx.String("entrypoint", e.EntryPoint),
			slogx.String("tag", e.Tag),
			slogx.Uint64("sequence", e.Sequence),
			slogx.Int("index", e.Index),
			slogx.Stringer("invocation_hash", e.InvocationHash),
			slogx.String("data", hex.EncodeToString(e.Data)),
		)
	}
	return nil
}
