// Package logging configures colored structured logging with tint for the
// process embedding the bill-splitting engine.
//
// Usage:
//
//	logging.Setup(config.Load().LogLevel)
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler at the given level as the slog default.
// Domain packages log through slog.Default, so this is all the wiring an
// embedder needs.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}
