package builder

import (
	internalLogger "github.com/joeydtaylor/wiremarker/pkg/internal/internallogger"
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

type LoggerOption = internalLogger.LoggerOption

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
)

// NewLogger constructs a zap-backed Logger.
func NewLogger(options ...internalLogger.LoggerOption) types.Logger {
	return internalLogger.NewLogger(options...)
}

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// LoggerWithDevelopment enables or disables development mode.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LogLevel is exported from the internal types package.
type LogLevel = types.LogLevel

// Export log levels to be accessible under the builder package
const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)
