package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type Config struct {
	WithRequestHeader    bool     `mapstructure:"request_header"`
	WithRequestQuery     bool     `mapstructure:"request_query"`
	Disable              bool     `mapstructure:"disable"` // suppress INFO-level request logs
	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`
}

// New returns a middleware that logs one line per completed request.
func New(config Config) fiber.Handler {
	hidden := lo.SliceToMap(config.HiddenRequestHeaders, func(h string) (string, struct{}) {
		return strings.ToLower(strings.TrimSpace(h)), struct{}{}
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		if err != nil || status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		if config.Disable && level == slog.LevelInfo {
			return errors.WithStack(err)
		}

		request := []slog.Attr{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slog.String("user_agent", string(c.Context().UserAgent())),
			slog.Int("length", len(c.Body())),
		}
		if config.WithRequestQuery {
			request = append(request, slog.String("query", string(c.Request().URI().QueryString())))
		}
		if config.WithRequestHeader {
			headers := make([]any, 0)
			for k, v := range c.GetReqHeaders() {
				if _, ok := hidden[strings.ToLower(k)]; ok {
					continue
				}
				headers = append(headers, slog.Any(k, v))
			}
			request = append(request, slog.Group("header", headers...))
		}

		attrs := []slog.Attr{
			slog.String("event", "api_request"),
			slog.Int64("latency_ms", latency.Milliseconds()),
			{Key: "request", Value: slog.GroupValue(request...)},
			{Key: "response", Value: slog.GroupValue(
				slog.Int("status", status),
				slog.Int("length", len(c.Response().Body())),
			)},
		}
		if level == slog.LevelError {
			logErr := err
			if logErr == nil {
				logErr = fiber.NewError(status)
			}
			attrs = append(attrs, slog.Any("error", logErr))
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return errors.WithStack(err)
	}
}
