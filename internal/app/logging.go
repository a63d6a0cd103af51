package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the application logger. Logs go to file, or nowhere
// when file is empty, since stderr is covered by the editor screen.
// The returned level can be changed at runtime.
func NewLogger(level, file string) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("log level %q: %w", level, err)
	}
	atom := zap.NewAtomicLevelAt(lvl)

	if file == "" {
		return zap.NewNop(), atom, nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atom
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("edbasics"), atom, nil
}
