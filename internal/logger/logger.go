package logger

import (
	"log/slog"
	"os"
)

// New creates a slog.Logger tuned for the environment: verbose text output in
// development, JSON at info level everywhere else.
func New(env string) *slog.Logger {
	if env == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
