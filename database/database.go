package database

import (
	"fmt"
	"os"
	"strconv"

	"chubgame/logger"
	"chubgame/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	DB = db
	logger.Info("connected to database")

	autoMigrate, _ := strconv.ParseBool(os.Getenv("DB_AUTO_MIGRATE"))
	if autoMigrate {
		if err := DB.AutoMigrate(
			&models.User{},
			&models.LedgerEntry{},
			&models.DiceRound{},
		); err != nil {
			logger.Error("failed to auto-migrate database", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("auto migration completed")
	}
}
