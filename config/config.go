package config

import (
	"os"
	"strconv"
	"strings"
)

// GameConfig carries the settlement rules that the plugin options page used
// to hold. It is injected into the engine at construction; nothing in the
// game package reads the environment.
type GameConfig struct {
	WinPointsMin  int64
	WinPointsMax  int64
	LossPointsMin int64
	LossPointsMax int64

	AddReference      string
	SubtractReference string

	AddLogEntryPvE    string
	AddLogEntryPvP    string
	AddLogEntryRefund string
	SubLogEntryPvE    string
	SubLogEntryPvP    string
}

type RouteConfig struct {
	Prefix        string
	ValidateRoute string
	BalanceRoute  string
	SendRoute     string
}

type Config struct {
	Host string
	Port string

	Routes RouteConfig
	Game   GameConfig

	EnableAllowedDomain bool
	AllowedDomain       string
}

func Load() *Config {
	return &Config{
		Host: getenv("HOST", "127.0.0.1"),
		Port: getenv("PORT", "3000"),
		Routes: RouteConfig{
			Prefix:        getenv("API_ROUTE_PREFIX", "chubgame/v1"),
			ValidateRoute: getenv("PROMOTION_VALIDATION_ROUTE", "/validate"),
			BalanceRoute:  getenv("CHECK_BALANCE_ROUTE", "/check-balance"),
			SendRoute:     getenv("DICE_SEND_ROUTE", "/send"),
		},
		Game: GameConfig{
			WinPointsMin:  getenvInt64("WIN_POINTS_MIN", 5),
			WinPointsMax:  getenvInt64("WIN_POINTS_MAX", 5000),
			LossPointsMin: getenvInt64("LOSS_POINTS_MIN", 5),
			LossPointsMax: getenvInt64("LOSS_POINTS_MAX", 5000),

			AddReference:      getenv("POINTS_ADD_REFERENCE", "dice_game_add"),
			SubtractReference: getenv("POINTS_SUBTRACT_REFERENCE", "dice_game_subtract"),

			AddLogEntryPvE:    getenv("POINTS_ADD_LOG_ENTRY_PVE", "PvE dice game win"),
			AddLogEntryPvP:    getenv("POINTS_ADD_LOG_ENTRY_PVP", "PvP dice game win"),
			AddLogEntryRefund: getenv("POINTS_ADD_LOG_ENTRY_REFUND", "Refund for insufficient child points"),
			SubLogEntryPvE:    getenv("POINTS_SUBTRACT_LOG_ENTRY_PVE", "PvE dice game lose"),
			SubLogEntryPvP:    getenv("POINTS_SUBTRACT_LOG_ENTRY_PVP", "PvP dice game lose"),
		},
		EnableAllowedDomain: getenvBool("ENABLE_ALLOWED_DOMAIN", false),
		AllowedDomain:       getenv("ALLOWED_DOMAIN", ""),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
