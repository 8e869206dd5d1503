// Package logging builds the application logger and carries it through
// contexts.
package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyLogger struct{}

// New returns a console logger writing to stderr. Only warnings and errors
// are emitted unless debug is set.
func New(debug bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       debug,
		DisableStacktrace: !debug,
		Encoding:          "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger{}, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKeyLogger{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return zap.NewNop()
}
