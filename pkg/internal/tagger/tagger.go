// Package tagger implements the object tagging operation: resolve the
// configured parameters against the triggering record, merge or replace the
// stored object's tag set, mirror the applied tag onto the record's attributes,
// and route the record to exactly one of the success/failure outputs.
package tagger

import (
	"context"
	"sync"
	"time"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
	"github.com/joeydtaylor/wiremarker/pkg/internal/utils"
)

const (
	// AttributeTagPrefix is the reserved attribute namespace for tags applied
	// by this operation. Downstream consumers discover applied tags under it.
	AttributeTagPrefix = "s3.tag."

	// DefaultPenalty is applied to a record before failure routing when the
	// configuration does not set one.
	DefaultPenalty = 30 * time.Second
)

// Tagger is the default types.Tagger implementation. Each Process call is
// independent and owns only its record; concurrent calls need no coordination
// beyond the injected store's own thread safety.
type Tagger struct {
	componentMetadata types.ComponentMetadata
	ctx               context.Context
	cancel            context.CancelFunc
	isServing         int32 // atomic

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex

	store  types.ObjectTagStore
	config types.TaggerConfig

	maxBufferSize int
	successOut    chan types.Record
	failureOut    chan types.Record
}

// NewTagger creates a Tagger configured with the provided options. The default
// configuration appends tags and penalizes failed records by DefaultPenalty.
func NewTagger(ctx context.Context, options ...types.TaggerOption) types.Tagger {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	t := &Tagger{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "TAGGER",
		},
		ctx:     ctx,
		cancel:  cancel,
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor, 0),
		config: types.TaggerConfig{
			AppendTag: true,
			Penalty:   DefaultPenalty,
		},
		maxBufferSize: 1000,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}

	t.successOut = make(chan types.Record, t.maxBufferSize)
	t.failureOut = make(chan types.Record, t.maxBufferSize)

	return t
}

// SetTagStore injects the remote store capability.
func (t *Tagger) SetTagStore(store types.ObjectTagStore) {
	t.store = store
}

// SetTaggerConfig replaces the operation parameters wholesale. A non-positive
// Penalty is normalized to DefaultPenalty.
func (t *Tagger) SetTaggerConfig(c types.TaggerConfig) {
	if c.Penalty <= 0 {
		c.Penalty = DefaultPenalty
	}
	t.config = c
}

// GetSuccessOutput returns the success output channel.
func (t *Tagger) GetSuccessOutput() chan types.Record { return t.successOut }

// GetFailureOutput returns the failure output channel.
func (t *Tagger) GetFailureOutput() chan types.Record { return t.failureOut }

func (t *Tagger) Name() string { return "TAGGER" }

// Stop cancels the tagger's context; an in-flight Serve loop drains out.
func (t *Tagger) Stop() { t.cancel() }

func (t *Tagger) GetComponentMetadata() types.ComponentMetadata { return t.componentMetadata }

func (t *Tagger) SetComponentMetadata(name string, id string) {
	t.componentMetadata.Name = name
	t.componentMetadata.ID = id
}

func (t *Tagger) ConnectLogger(l ...types.Logger) {
	t.loggersLock.Lock()
	defer t.loggersLock.Unlock()
	t.loggers = append(t.loggers, l...)
}

func (t *Tagger) ConnectSensor(s ...types.Sensor) {
	t.sensorLock.Lock()
	defer t.sensorLock.Unlock()
	t.sensors = append(t.sensors, s...)
}

func (t *Tagger) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	t.loggersLock.Lock()
	defer t.loggersLock.Unlock()
	for _, logger := range t.loggers {
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

func (t *Tagger) snapshotSensors() []types.Sensor {
	t.sensorLock.Lock()
	defer t.sensorLock.Unlock()
	out := make([]types.Sensor, len(t.sensors))
	copy(out, t.sensors)
	return out
}
