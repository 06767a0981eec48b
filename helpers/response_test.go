package helpers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShape(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return JSONSuccess(c, "done", fiber.Map{"balance": 42.0})
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return JSONError(c, fiber.StatusNotFound, "Invalid username", "no_user", nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Code    int            `json:"code"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, 200, body.Code)
	require.Equal(t, "done", body.Message)
	require.Equal(t, "success", body.Data["status"])
	require.Equal(t, 42.0, body.Data["balance"])

	resp, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, _ = io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, 404, body.Code)
	require.Equal(t, "no_user", body.Data["status"])
}
