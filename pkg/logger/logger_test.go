package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"debug level text", &Config{Level: "debug", Format: "text"}},
		{"info level json", &Config{Level: "info", Format: "json"}},
		{"warn level text", &Config{Level: "warn", Format: "text"}},
		{"error level json", &Config{Level: "error", Format: "json"}},
		{"uppercase level", &Config{Level: "DEBUG", Format: "text"}},
		{"unknown level falls back to info", &Config{Level: "verbose", Format: "text"}},
		{"unknown format falls back to text", &Config{Level: "info", Format: "pretty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.config)
			slog.Info("probe message")
		})
	}
}

func TestWithContextAttaches(t *testing.T) {
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-abc")
	ctx = context.WithValue(ctx, UserEmailKey, "suyash@lawfirm.com")

	WithContext(ctx).Info("attached")

	out := buf.String()
	if !strings.Contains(out, "req-abc") {
		t.Error("Expected request ID in log output")
	}
	if !strings.Contains(out, "suyash@lawfirm.com") {
		t.Error("Expected user email in log output")
	}
}

func TestWithContextEmpty(t *testing.T) {
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	WithContext(context.Background()).Info("bare")

	out := buf.String()
	if strings.Contains(out, "request_id") {
		t.Error("Did not expect request_id attribute without context value")
	}
	if strings.Contains(out, "user_email") {
		t.Error("Did not expect user_email attribute without context value")
	}
}

func TestLogFunctions(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")

	tests := []struct {
		name string
		log  func(context.Context, string, ...any)
		msg  string
	}{
		{"debug", Debug, "debug message"},
		{"info", Info, "info message"},
		{"warn", Warn, "warn message"},
		{"error", Error, "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log(ctx, tt.msg, "key", "value")

			out := buf.String()
			if !strings.Contains(out, tt.msg) {
				t.Errorf("Expected %q in log output", tt.msg)
			}
			if !strings.Contains(out, "req-123") {
				t.Error("Expected request ID in log output")
			}
		})
	}
}
