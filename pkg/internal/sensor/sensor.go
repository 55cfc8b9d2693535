// Package sensor provides a small telemetry component for tagging activity.
// Callers register callbacks up front; components invoke them as records are
// processed. Sensors observe, they never mutate records.
package sensor

import (
	"sync"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
	"github.com/joeydtaylor/wiremarker/pkg/internal/utils"
)

// Sensor is the default types.Sensor implementation.
type Sensor struct {
	componentMetadata types.ComponentMetadata

	loggers     []types.Logger
	loggersLock sync.Mutex

	callbackLock sync.Mutex
	onStart      []func(types.ComponentMetadata)
	onTagApplied []func(types.ComponentMetadata, types.Record, types.Tag)
	onFailure    []func(types.ComponentMetadata, types.Record, error)
	onStop       []func(types.ComponentMetadata)
}

// NewSensor constructs a Sensor with defaults and applies options.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
		loggers: make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

// WithLogger attaches loggers to the sensor.
func WithLogger(l ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(l...)
	}
}

// WithOnTagApplied registers tag-applied callbacks.
func WithOnTagApplied(cb ...func(types.ComponentMetadata, types.Record, types.Tag)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnTagApplied(cb...)
	}
}

// WithOnFailure registers failure callbacks.
func WithOnFailure(cb ...func(types.ComponentMetadata, types.Record, error)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnFailure(cb...)
	}
}

func (s *Sensor) ConnectLogger(l ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	s.loggers = append(s.loggers, l...)
}

func (s *Sensor) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	for _, logger := range s.loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (s *Sensor) GetComponentMetadata() types.ComponentMetadata { return s.componentMetadata }

func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}
