package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors/errbase"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
)

// recordError returns the first error attached to rec.
func recordError(rec slog.Record) error {
	var found error
	rec.Attrs(func(attr slog.Attr) bool {
		if attr.Key != slogx.ErrorKey && attr.Key != "err" {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok && err != nil {
			found = err
			return false
		}
		return true
	})
	return found
}

// middlewareError adds the verbose form of the record's error.
func middlewareError() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			if err := recordError(rec); err != nil {
				rec.AddAttrs(slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
			}
			return next(ctx, rec)
		}
	}
}

// middlewareErrorStackTrace adds the stack trace of the record's error, if it has one.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			if err := recordError(rec); err != nil {
				if x, ok := err.(errbase.StackTraceProvider); ok {
					rec.AddAttrs(slog.Any(ErrorStackTraceKey, traceLines(x.StackTrace())))
				}
			}
			return next(ctx, rec)
		}
	}
}

func traceLines(frames errbase.StackTrace) []string {
	lines := make([]string, 0, len(frames))

	// walk from the bottom so consecutive runtime frames can be dropped
	skipping := true
	for i := len(frames) - 1; i >= 0; i-- {
		pc := uintptr(frames[i]) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			lines = append(lines, "unknown")
			skipping = false
			continue
		}

		name := fn.Name()
		if skipping && strings.HasPrefix(name, "runtime.") {
			continue
		}
		skipping = false

		file, line := fn.FileLine(pc)
		lines = append(lines, fmt.Sprintf("%s %s:%d", name, file, line))
	}
	return lines
}
