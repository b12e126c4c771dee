package xlog

import (
	"context"
	"log/slog"
	"os"
	"runtime"
)

var logger *slog.Logger

func init() {
	logger = slog.New(newHandler(os.Stdout))
}

func newHandler(w *os.File) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: levelFromEnv(),
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
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

func _log(level slog.Level, msg string, args ...any) {
	_, f, l, _ := runtime.Caller(2)
	args = append(args, slog.Group("source",
		slog.Attr{Key: "file", Value: slog.AnyValue(f)},
		slog.Attr{Key: "L", Value: slog.AnyValue(l)},
	))
	logger.Log(context.Background(), level, msg, args...)
}

func Debug(msg string, args ...any) {
	_log(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	_log(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	_log(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	_log(slog.LevelError, msg, args...)
}
