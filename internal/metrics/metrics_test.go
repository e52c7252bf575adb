package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_ExposesCounters(t *testing.T) {
	Init()
	Init()

	app := fiber.New()
	app.Use(Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/broken", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "no") })
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/items/42", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	Fallbacks.WithLabelValues("quiz").Inc()
	ModelRequests.WithLabelValues("gemini", OutcomeQuota).Inc()

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	assert.Contains(t, text, `pathpilot_http_requests_total{method="GET",path="/items/:id",status="200"}`)
	assert.Contains(t, text, `pathpilot_http_requests_total{method="GET",path="/broken",status="418"}`)
	assert.Contains(t, text, `pathpilot_fallbacks_total{kind="quiz"}`)
	assert.Contains(t, text, `pathpilot_model_requests_total{outcome="quota",provider="gemini"}`)
	assert.Contains(t, text, "pathpilot_http_request_duration_seconds_bucket")
}
