package requestcontext

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// Option enriches the request's user context. Returning a *fiber.Error
// aborts the request with that status.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// New returns a middleware that applies opts, in order, to the request's user context.
func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err == nil {
				continue
			}
			if e := new(fiber.Error); errors.As(err, &e) {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			logger.ErrorContext(ctx, "failed to extract request context",
				slogx.String("event", "requestcontext/error"),
				slogx.Int("option_index", i),
				slogx.Error(err),
			)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
