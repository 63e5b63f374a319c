package requestcontext

import (
	"context"

	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

type requestIDKey struct{}

// GetRequestID returns the request id stored by [WithRequestID], or an empty string.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID reuses the incoming X-Request-ID header or generates one,
// echoes it in the response and attaches it to the context logger.
func WithRequestID() Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if !ok || id == "" {
			id = c.Get(requestid.ConfigDefault.Header, fiberutils.UUID())
			c.Set(requestid.ConfigDefault.Header, id)
			c.Locals(requestid.ConfigDefault.ContextKey, id)
		}

		ctx = context.WithValue(ctx, requestIDKey{}, id)
		ctx = logger.WithContext(ctx, "request_id", id)
		return ctx, nil
	}
}
