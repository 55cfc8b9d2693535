package internallogger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]types.LogLevel{
		"debug":  types.DebugLevel,
		"info":   types.InfoLevel,
		"warn":   types.WarnLevel,
		"error":  types.ErrorLevel,
		"dpanic": types.DPanicLevel,
		"panic":  types.PanicLevel,
		"fatal":  types.FatalLevel,
		"bogus":  types.InfoLevel,
		"":      types.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConvertLevelRoundTrip(t *testing.T) {
	levels := []types.LogLevel{
		types.DebugLevel, types.InfoLevel, types.WarnLevel, types.ErrorLevel,
		types.DPanicLevel, types.PanicLevel, types.FatalLevel,
	}
	for _, lvl := range levels {
		if got := convertZapLevel(ConvertLevel(lvl)); got != lvl {
			t.Fatalf("round trip for %v returned %v", lvl, got)
		}
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger := NewLogger(LoggerWithLevel("error"))
	if logger.GetLevel() != types.ErrorLevel {
		t.Fatalf("expected error level, got %v", logger.GetLevel())
	}

	logger.SetLevel(types.DebugLevel)
	if logger.atomicLevel.Level() != zapcore.DebugLevel {
		t.Fatalf("expected debug level after SetLevel")
	}
}

func TestLogger_AddAndRemoveSink(t *testing.T) {
	logger := NewLogger()

	if err := logger.AddSink("stdout-extra", types.SinkConfig{Type: "stdout"}); err != nil {
		t.Fatalf("AddSink: %v", err)
	}
	sinks, err := logger.ListSinks()
	if err != nil || len(sinks) != 1 {
		t.Fatalf("expected one sink, got %v (%v)", sinks, err)
	}

	if err := logger.RemoveSink("stdout-extra"); err != nil {
		t.Fatalf("RemoveSink: %v", err)
	}
	if err := logger.RemoveSink("stdout-extra"); err == nil {
		t.Fatalf("expected error removing unknown sink")
	}
}

func TestLogger_RemovedFileSinkReceivesNothing(t *testing.T) {
	logger := NewLogger()
	path := filepath.Join(t.TempDir(), "audit.log")

	if err := logger.AddSink("audit-file", types.SinkConfig{
		Type:   "file",
		Config: map[string]interface{}{"path": path},
	}); err != nil {
		t.Fatalf("AddSink: %v", err)
	}
	logger.Info("before-removal")

	if err := logger.RemoveSink("audit-file"); err != nil {
		t.Fatalf("RemoveSink: %v", err)
	}
	logger.Info("after-removal")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sink file: %v", err)
	}
	if !strings.Contains(string(data), "before-removal") {
		t.Fatalf("sink missed output written while attached: %s", data)
	}
	if strings.Contains(string(data), "after-removal") {
		t.Fatalf("removed sink still received log output: %s", data)
	}
}

func TestLogger_AddSinkRejectsUnknownType(t *testing.T) {
	logger := NewLogger()
	if err := logger.AddSink("x", types.SinkConfig{Type: "carrier-pigeon"}); err == nil {
		t.Fatalf("expected unsupported sink type error")
	}
}
