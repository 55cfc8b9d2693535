package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap configuration before the adapter is built.
type LoggerOption func(*zap.Config, *int)

// ZapLoggerAdapter wraps a zap.Logger behind the library's Logger interface.
type ZapLoggerAdapter struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	encConfig   zapcore.EncoderConfig

	mu       sync.Mutex
	baseCore zapcore.Core
	sinks    map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	callerDepth := 1

	for _, option := range options {
		option(&config, &callerDepth)
	}

	atomicLevel := zap.NewAtomicLevelAt(config.Level.Level())

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if config.Development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	baseCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomicLevel)
	logger := zap.New(zapcore.NewTee(baseCore), zap.AddCaller(), zap.AddCallerSkip(callerDepth))

	return &ZapLoggerAdapter{
		logger:      logger,
		atomicLevel: atomicLevel,
		callerDepth: callerDepth,
		encConfig:   encoderConfig,
		baseCore:    baseCore,
		sinks:       make(map[string]sinkEntry),
	}
}
