package config

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger routes the default slog logger to a rotating log file in the
// data directory. Diagnostics only; nothing here is user-facing output.
func InitLogger() {
	writer := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     30,
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	)
}
