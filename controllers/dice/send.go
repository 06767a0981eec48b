package dice

import (
	"errors"

	"chubgame/config"
	"chubgame/database"
	"chubgame/game"
	"chubgame/helpers"
	"chubgame/ledger"
	"chubgame/logger"
	"chubgame/promotion"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Send settles one dice game. The whole settlement (balance mutations,
// ledger entries, round rows) runs in a single transaction, except that
// the parent-refund path commits its credit even though the request
// itself fails.
func Send(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req game.SettleRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest,
				"All parameters are required.", "missing_parameters", nil)
		}

		logger.Info("dice settle request",
			zap.String("username", req.Username),
			zap.Int64("chips", req.Chips),
			zap.Int64("diceAmount", req.DiceAmount),
			zap.Int64("totalPoints", req.TotalPoints),
			zap.String("promotionCode", req.PromotionCode),
		)

		tx := database.DB.Begin()
		if tx.Error != nil {
			return renderError(c, tx.Error)
		}

		gw := ledger.NewGorm(tx)
		engine := game.NewEngine(cfg.Game, gw, gw, promotion.NewStore(tx))

		res, err := engine.Settle(&req)
		if err != nil {
			var ge *game.Error
			if errors.As(err, &ge) && ge.Mutated {
				if cerr := tx.Commit().Error; cerr != nil {
					return renderError(c, cerr)
				}
			} else {
				tx.Rollback()
			}
			logger.Warn("dice settle rejected",
				zap.String("username", req.Username), zap.Error(err))
			return renderError(c, err)
		}

		if err := tx.Commit().Error; err != nil {
			return renderError(c, err)
		}

		data := fiber.Map{
			"balance": res.Balance.InexactFloat64(),
			"result":  res.Result.InexactFloat64(),
		}
		if res.PromotionCode != "" {
			data["promotion_code"] = res.PromotionCode
		}
		return helpers.JSONSuccess(c, res.Message, data)
	}
}
