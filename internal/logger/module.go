package logger

import (
	"log/slog"

	"go.uber.org/fx"

	"slotdesk/internal/config"
)

// Module wires the environment-aware slog logger for dependency injection.
var Module = fx.Provide(func(cfg *config.Config) *slog.Logger {
	return New(cfg.Env)
})
