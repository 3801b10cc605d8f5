package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	Setup(slog.LevelWarn)

	logger := slog.Default()
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be enabled at warn level")
	}
}
