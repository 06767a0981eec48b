package routes

import (
	"chubgame/config"
	"chubgame/controllers/dice"
	"chubgame/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, cfg *config.Config) {
	api := app.Group("/"+cfg.Routes.Prefix, middlewares.AllowedDomain(cfg))
	api.Post(cfg.Routes.ValidateRoute, dice.ValidatePromotion(cfg))
	api.Post(cfg.Routes.BalanceRoute, dice.CheckBalance(cfg))
	api.Post(cfg.Routes.SendRoute, dice.Send(cfg))
}
