package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chubgame/config"
	"chubgame/database"
	"chubgame/logger"
	"chubgame/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger.Init()
	defer logger.Sync()

	database.Connect()

	cfg := config.Load()

	app := fiber.New()
	routes.Setup(app, cfg)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	logger.Info("server running", zap.String("addr", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Error("failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server exited cleanly")
}
