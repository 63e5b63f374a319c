package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	undo func()

	// -1 until Init succeeds
	autoMaxProcs = -1

	initialMaxProcs = Current()
)

// Init sets GOMAXPROCS to the container CPU quota, if any, and logs the change.
// A GOMAXPROCS environment variable takes precedence.
func Init() error {
	log := logger.With(
		slogx.String("package", "automaxprocs"),
		slogx.String("event", "set_gomaxprocs"),
		slogx.Int("prev_maxprocs", initialMaxProcs),
	)

	printf := func(format string, v ...any) {
		attrs := make([]slog.Attr, 0, 1)
		// maxprocs passes the new value as the first argument, except on undo
		if val, ok := utils.Optional(v); ok {
			if _, exists := os.LookupEnv("GOMAXPROCS"); exists {
				val = Current()
			}
			if n, ok := val.(int); ok {
				attrs = append(attrs, slogx.Int("set_maxprocs", n))
			}
		}
		log.LogAttrs(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}

	revert, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1))
	if err != nil {
		return errors.WithStack(err)
	}
	autoMaxProcs = Current()
	undo = revert
	return nil
}

// Undo restores the GOMAXPROCS value from before Init and returns it.
func Undo() int {
	if undo != nil {
		undo()
		return Current()
	}
	runtime.GOMAXPROCS(initialMaxProcs)
	return initialMaxProcs
}

func Current() int {
	return runtime.GOMAXPROCS(0)
}

// Value returns the GOMAXPROCS value set by Init, or -1.
func Value() int {
	if autoMaxProcs <= 0 {
		return -1
	}
	return autoMaxProcs
}
