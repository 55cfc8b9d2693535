// pkg/internal/tagger/options.go
package tagger

import (
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// WithTagStore injects the remote store capability.
func WithTagStore(store types.ObjectTagStore) types.TaggerOption {
	return func(t types.Tagger) {
		t.SetTagStore(store)
	}
}

// WithTaggerConfig sets the operation parameters.
func WithTaggerConfig(cfg types.TaggerConfig) types.TaggerOption {
	return func(t types.Tagger) {
		t.SetTaggerConfig(cfg)
	}
}

// WithLogger attaches loggers to the tagger.
func WithLogger(l ...types.Logger) types.TaggerOption {
	return func(t types.Tagger) {
		t.ConnectLogger(l...)
	}
}

// WithSensor attaches sensors to the tagger.
func WithSensor(s ...types.Sensor) types.TaggerOption {
	return func(t types.Tagger) {
		t.ConnectSensor(s...)
	}
}

// WithComponentMetadata overrides the component name and ID.
func WithComponentMetadata(name string, id string) types.TaggerOption {
	return func(t types.Tagger) {
		t.SetComponentMetadata(name, id)
	}
}

// WithOutputBuffer sets the capacity of the success and failure outputs.
func WithOutputBuffer(size int) types.TaggerOption {
	return func(t types.Tagger) {
		if tg, ok := t.(*Tagger); ok && size > 0 {
			tg.maxBufferSize = size
		}
	}
}
