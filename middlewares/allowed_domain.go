package middlewares

import (
	"net/url"

	"chubgame/config"

	"github.com/gofiber/fiber/v2"
)

// AllowedDomain rejects requests whose Origin or Referer host does not
// match the configured domain. Runs before any game logic; disabled
// unless ENABLE_ALLOWED_DOMAIN is set.
func AllowedDomain(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.EnableAllowedDomain || cfg.AllowedDomain == "" {
			return c.Next()
		}

		if hostMatches(c.Get("Origin"), cfg.AllowedDomain) ||
			hostMatches(c.Get("Referer"), cfg.AllowedDomain) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"valid": false,
			"error": "Invalid origin or referer",
		})
	}
}

func hostMatches(raw, domain string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Hostname() == domain
}
