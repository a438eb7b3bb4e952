package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sindhipoetry/backend/internal/config"
)

// redactedKeys are attribute keys whose values never reach the log output.
// Admin bearer tokens and text-service API keys travel through the same
// request structs that get logged on failure.
var redactedKeys = map[string]struct{}{
	"token":         {},
	"authorization": {},
	"api_key":       {},
	"jwt_secret":    {},
}

// NewLogger builds the process logger from LogConfig, writes to os.Stderr and
// installs it as the slog default.
//
// Format "json" is for deployments, "text" adds source positions for local runs.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := redactedKeys[strings.ToLower(a.Key)]; ok && a.Value.String() != "" {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
