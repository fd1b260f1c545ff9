// Package observability provides structured logging for the extractor binaries.
package observability

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/pawnplanner/internal/config"
)

// NewLogger creates a structured logger writing to stderr, so log lines never
// mix with anything a job prints to stdout.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	return NewLoggerTo(cfg, zapcore.Lock(os.Stderr))
}

// NewLoggerTo is NewLogger with an explicit sink.
//
// Postcondition: entries below cfg.Level are discarded; warn and above in
// console format carry the caller, error and above in json format carry a
// stack trace.
func NewLoggerTo(cfg config.LoggingConfig, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var (
		enc   zapcore.Encoder
		opts  []zap.Option
		encfg zapcore.EncoderConfig
	)
	switch cfg.Format {
	case "json":
		encfg = zap.NewProductionEncoderConfig()
		encfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encfg)
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	case "console":
		encfg = zap.NewDevelopmentEncoderConfig()
		encfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encfg)
		opts = append(opts, zap.AddCaller())
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(level))
	return zap.New(core, append(opts, zap.ErrorOutput(sink))...), nil
}
