package dice

import (
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

// ValidatePromotion links a promotion code to its generator for a
// redeeming child. Moves no balance.
func ValidatePromotion(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req game.ValidateRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest,
				"Promotion code and username are required.", "missing_parameters", nil)
		}

		logger.Info("promotion validate request",
			zap.String("promotionCode", req.PromotionCode),
			zap.String("username", req.Username),
		)

		tx := database.DB.Begin()
		if tx.Error != nil {
			return renderError(c, tx.Error)
		}

		gw := ledger.NewGorm(tx)
		engine := game.NewEngine(cfg.Game, gw, gw, promotion.NewStore(tx))

		res, err := engine.ValidatePromotion(&req)
		if err != nil {
			tx.Rollback()
			return renderError(c, err)
		}
		if err := tx.Commit().Error; err != nil {
			return renderError(c, err)
		}

		return helpers.JSONSuccess(c, "Promotion code is valid and successfully applied.", fiber.Map{
			"valid":              true,
			"parent_user_id":     res.ParentUserID,
			"parent_dice_amount": res.ParentDiceAmount,
		})
	}
}
