package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ServiceName is attached to every record so logs from the sibling services
// can be told apart once aggregated.
const ServiceName = "showcase"

// SlogAdapter implements Logger on top of log/slog.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a logger writing to stdout.
func NewSlogAdapter(env string, level string) *SlogAdapter {
	return NewSlogAdapterWithWriter(os.Stdout, env, level)
}

// NewSlogAdapterWithWriter creates a logger writing to w. Development gets
// the text handler, every other environment gets JSON.
func NewSlogAdapterWithWriter(w io.Writer, env string, level string) *SlogAdapter {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &SlogAdapter{
		logger: slog.New(handler).With("service", ServiceName),
	}
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func (s *SlogAdapter) Debug(ctx context.Context, msg string, args ...any) {
	s.logger.DebugContext(ctx, msg, args...)
}

func (s *SlogAdapter) Info(ctx context.Context, msg string, args ...any) {
	s.logger.InfoContext(ctx, msg, args...)
}

func (s *SlogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	s.logger.WarnContext(ctx, msg, args...)
}

func (s *SlogAdapter) Error(ctx context.Context, msg string, args ...any) {
	s.logger.ErrorContext(ctx, msg, args...)
}

var _ Logger = (*SlogAdapter)(nil)
