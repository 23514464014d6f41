// Package logging builds the zap loggers used by the app and the CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config returns the console configuration shared by the desktop app and
// the CLI. Logs go to stderr so CLI output on stdout stays clean.
func Config(debug bool) zap.Config {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Development = debug
	cfg.DisableStacktrace = !debug
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// New builds a named logger, falling back to a no-op logger if the
// configuration cannot be built.
func New(name string, debug bool) *zap.Logger {
	logger, err := Config(debug).Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named(name)
}
