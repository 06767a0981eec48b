package dice

import (
	"errors"

	"chubgame/game"
	"chubgame/helpers"

	"github.com/gofiber/fiber/v2"
)

func renderError(c *fiber.Ctx, err error) error {
	var ge *game.Error
	if errors.As(err, &ge) {
		extra := fiber.Map{}
		for k, v := range ge.Extra {
			extra[k] = v
		}
		return helpers.JSONError(c, ge.Code, ge.Message, ge.Tag, extra)
	}
	return helpers.JSONError(c, fiber.StatusServiceUnavailable,
		game.ErrLedgerUnavailable.Message, game.ErrLedgerUnavailable.Tag, nil)
}
