package builder

import (
	"github.com/joeydtaylor/wiremarker/pkg/internal/sensor"
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

type ComponentMetadata = types.ComponentMetadata

// NewSensor creates a telemetry sensor for tagging activity.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger attaches loggers to the sensor.
func SensorWithLogger(l ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(l...)
}

// SensorWithOnTagApplied registers tag-applied callbacks.
func SensorWithOnTagApplied(cb ...func(c ComponentMetadata, rec types.Record, tag types.Tag)) types.Option[types.Sensor] {
	return sensor.WithOnTagApplied(cb...)
}

// SensorWithOnFailure registers failure callbacks.
func SensorWithOnFailure(cb ...func(c ComponentMetadata, rec types.Record, err error)) types.Option[types.Sensor] {
	return sensor.WithOnFailure(cb...)
}
