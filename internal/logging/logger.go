// Package logging builds the zap loggers used by docnote.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at level writing to file. The interactive viewer
// owns the terminal, so an empty file yields a no-op logger.
func New(level, file string) (*zap.SugaredLogger, error) {
	if file == "" {
		return zap.NewNop().Sugar(), nil
	}
	return build(level, file)
}

// NewStderr returns a development logger on stderr for the non-interactive
// modes (print, html, open).
func NewStderr(level string) (*zap.SugaredLogger, error) {
	return build(level, "stderr")
}

func build(level, output string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
