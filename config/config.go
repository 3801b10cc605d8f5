// Package config reads the module's ambient settings from the environment,
// with an optional .env file for development.
package config

import (
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ddaro/billsplit/bill"
)

// Settings holds everything the embedding application configures through the
// environment. Bad or missing values degrade to defaults; Load never fails.
type Settings struct {
	// LogLevel comes from LOG_LEVEL (debug, info, warn, error).
	LogLevel slog.Level

	// ServiceChargePercent and TaxPercent come from
	// DEFAULT_SERVICE_CHARGE_PERCENT and DEFAULT_TAX_PERCENT and seed new
	// bills for embedders that configure surcharges per deployment.
	ServiceChargePercent float64
	TaxPercent           float64
}

// Load reads settings from the environment. A .env file in the working
// directory is merged in first if present; real environment variables win.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		LogLevel:             levelFromEnv(),
		ServiceChargePercent: percentFromEnv("DEFAULT_SERVICE_CHARGE_PERCENT", bill.DefaultServiceChargePercent),
		TaxPercent:           percentFromEnv("DEFAULT_TAX_PERCENT", bill.DefaultTaxPercent),
	}
}

// BillConfig returns the surcharge configuration for seeding a new bill.
func (s Settings) BillConfig() bill.Config {
	return bill.Config{
		ServiceChargePercent: s.ServiceChargePercent,
		TaxPercent:           s.TaxPercent,
	}
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// percentFromEnv parses a non-negative percentage, falling back on missing,
// unparseable, negative, or non-finite values.
func percentFromEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil || pct < 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return fallback
	}
	return pct
}
