package dice

import (
	"chubgame/config"
	"chubgame/database"
	"chubgame/game"
	"chubgame/helpers"
	"chubgame/ledger"
	"chubgame/promotion"

	"github.com/gofiber/fiber/v2"
)

// CheckBalance is read-only, so it runs straight against the pool.
func CheckBalance(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req game.BalanceRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest,
				"Username and chips are required.", "missing_parameters", nil)
		}

		gw := ledger.NewGorm(database.DB)
		engine := game.NewEngine(cfg.Game, gw, gw, promotion.NewStore(database.DB))

		balance, err := engine.CheckBalance(&req)
		if err != nil {
			return renderError(c, err)
		}

		return helpers.JSONSuccess(c, "Balance is sufficient for current user", fiber.Map{
			"balance": balance.InexactFloat64(),
		})
	}
}
