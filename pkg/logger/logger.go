package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// ContextKey is a private key type so request-scoped values cannot collide
// with other packages' context keys
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserEmailKey ContextKey = "user_email"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Init sets the process-wide slog default. Unknown levels fall back to info;
// anything but "json" means text output.
func Init(cfg *Config) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// WithContext returns the default logger enriched with the request ID and the
// authenticated email when the context carries them
func WithContext(ctx context.Context) *slog.Logger {
	log := slog.Default()

	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		log = log.With("request_id", id)
	}
	if email, ok := ctx.Value(UserEmailKey).(string); ok && email != "" {
		log = log.With("user_email", email)
	}

	return log
}

func Debug(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Error(msg, args...)
}
