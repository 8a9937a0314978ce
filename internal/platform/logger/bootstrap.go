package logger

import (
	"context"
	"log"
	"os"
)

// BootstrapLogger is used during startup, before configuration decides the
// level and format of the main logger.
type BootstrapLogger struct {
	logger *log.Logger
}

// NewBootstrapLogger creates a simple logger for bootstrap phase
func NewBootstrapLogger() *BootstrapLogger {
	return &BootstrapLogger{
		logger: log.New(os.Stdout, "[BOOTSTRAP] ", log.LstdFlags|log.Lmsgprefix),
	}
}

func (b *BootstrapLogger) Debug(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("DEBUG: %s %v", msg, args)
}

func (b *BootstrapLogger) Info(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("INFO: %s %v", msg, args)
}

func (b *BootstrapLogger) Warn(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("WARN: %s %v", msg, args)
}

func (b *BootstrapLogger) Error(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("ERROR: %s %v", msg, args)
}

var _ Logger = (*BootstrapLogger)(nil)
