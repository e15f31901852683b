package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, rps float64, burst int) (*fiber.App, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	m := New(logger, rps, burst)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Use(m.NewLoggingMiddleware)
	app.Use(m.NewRateLimiter)
	app.Post("/echo", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})

	return app, hook
}

func TestRequestIDMiddleware(t *testing.T) {
	app, _ := newTestApp(t, 100, 100)

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/echo", nil))
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		_, err = ulid.ParseStrict(string(body))
		assert.NoError(t, err)
		assert.Equal(t, string(body), resp.Header.Get(RequestIDKey))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/echo", nil)
		req.Header.Set(RequestIDKey, "caller-id")

		resp, err := app.Test(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "caller-id", string(body))
	})
}

func TestRateLimiter(t *testing.T) {
	app, hook := newTestApp(t, 0.001, 1)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/echo", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/echo", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.WarnLevel, last.Level)
	assert.Equal(t, fiber.StatusTooManyRequests, last.Data["status"])
}

func TestSanitizeRequestBody(t *testing.T) {
	assert.Equal(t, `{"message":"halo","token":"[SECRET]"}`, sanitizeRequestBody([]byte(`{"message":"halo","token":"abc"}`)))
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody([]byte("halo")))
}
