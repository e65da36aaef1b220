// Package logger builds the console's zap logger
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/osrsdps/dps-console/internal/errors"
)

// Config controls log output
type Config struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	ShowCaller bool   `yaml:"showCaller"`
}

// Levels accepted by Config.Level
var Levels = []string{"debug", "info", "warn", "error"}

// Validate checks the level name
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Level == "" {
		return nil
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Level", c.Level, Levels, vb)
	return vb.Build()
}

// New builds a development style sugared logger. Time and stack traces are
// left out; the caller is printed only when asked for.
func New(cfg *Config) (*zap.SugaredLogger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	switch cfg.Level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.StacktraceKey = ""
	if !cfg.ShowCaller {
		config.EncoderConfig.CallerKey = ""
	}
	if cfg.File != "" {
		config.OutputPaths = []string{cfg.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return Nop()
	}
	return l
}
