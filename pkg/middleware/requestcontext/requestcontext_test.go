package requestcontext

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, opts ...Option) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(New(opts...))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c.UserContext()) + "|" + GetClientIP(c.UserContext()))
	})
	return app
}

func TestWithRequestID(t *testing.T) {
	app := newTestApp(t, WithRequestID())

	t.Run("reuse incoming id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(fiber.HeaderXRequestID, "abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "abc|", string(body))
		assert.Equal(t, "abc", resp.Header.Get(fiber.HeaderXRequestID))
	})
	t.Run("generate id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	})
}

func TestWithClientIP(t *testing.T) {
	t.Run("invalid cidr", func(t *testing.T) {
		_, err := WithClientIP(WithClientIPConfig{TrustedProxiesIP: []string{"not-a-cidr"}})
		assert.Error(t, err)
	})
	t.Run("trusted header", func(t *testing.T) {
		opt, err := WithClientIP(WithClientIPConfig{TrustedHeader: "X-Real-IP"})
		require.NoError(t, err)
		app := newTestApp(t, opt)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Real-IP", "10.1.2.3")
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "|10.1.2.3", string(body))
	})
	t.Run("skip trusted proxies", func(t *testing.T) {
		opt, err := WithClientIP(WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}})
		require.NoError(t, err)
		app := newTestApp(t, opt)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, "1.1.1.1, 8.8.8.8, 10.0.0.1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "|8.8.8.8", string(body))
	})
}
