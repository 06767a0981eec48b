package middlewares

import (
	"net/http/httptest"
	"testing"

	"chubgame/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Post("/send", AllowedDomain(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAllowedDomainDisabled(t *testing.T) {
	app := newApp(&config.Config{})

	req := httptest.NewRequest("POST", "/send", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAllowedDomainMatchesOriginOrReferer(t *testing.T) {
	cfg := &config.Config{EnableAllowedDomain: true, AllowedDomain: "game.example.com"}
	app := newApp(cfg)

	cases := []struct {
		name    string
		origin  string
		referer string
		status  int
	}{
		{"origin match", "https://game.example.com", "", fiber.StatusOK},
		{"referer match", "", "https://game.example.com/dice?round=1", fiber.StatusOK},
		{"origin mismatch", "https://evil.example.com", "", fiber.StatusForbidden},
		{"no headers", "", "", fiber.StatusForbidden},
		{"subdomain is not the domain", "https://a.game.example.com", "", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/send", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
