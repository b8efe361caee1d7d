// Package logging builds the process logger: a zap core exposed as *slog.Logger
// so every component can take the standard logger type.
package logging

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configure New. Zero values mean info level and JSON output.
type Options struct {
	Level   string
	Format  string
	Service string
}

// New returns the slog front end and the underlying zap logger. Callers defer
// zl.Sync() before exit.
//
// Example:
//
//	logger, zl, err := logging.New(logging.Options{Level: "debug", Format: "console", Service: "purchasing"})
//	if err != nil {
//		return err
//	}
//	defer func() { _ = zl.Sync() }()
func New(opts Options) (*slog.Logger, *zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var cfg zap.Config
	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	zl, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build zap logger: %w", err)
	}
	if opts.Service != "" {
		zl = zl.With(zap.String("service", opts.Service))
	}

	return slog.New(zapslog.NewHandler(zl.Core(), zapslog.WithCaller(true))), zl, nil
}

// ParseLevel accepts zap level names; empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
