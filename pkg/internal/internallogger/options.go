package internallogger

import (
	"go.uber.org/zap"
)

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(cfg *zap.Config, callerDepth *int) {
		level := parseLogLevel(levelStr)
		cfg.Level = zap.NewAtomicLevelAt(ConvertLevel(level))
	}
}

// LoggerWithDevelopment enables or disables development mode in the logger configuration.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(cfg *zap.Config, callerDepth *int) {
		cfg.Development = dev
	}
}

// ZapAdapterWithCallerSkip sets the number of additional caller frames to skip.
func ZapAdapterWithCallerSkip(skip int) LoggerOption {
	return func(cfg *zap.Config, callerDepth *int) {
		*callerDepth += skip
	}
}
