// pkg/builder/tagger.go
package builder

import (
	"context"

	"github.com/joeydtaylor/wiremarker/pkg/internal/tagger"
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// Tag is a key/value label attached to a stored object.
type Tag = types.Tag

// TaggerConfig holds the per-operation parameters; string fields support
// "{attribute}" interpolation against the triggering record.
type TaggerConfig = types.TaggerConfig

// ObjectTagStore is the port to the remote store's tagging surface.
type ObjectTagStore = types.ObjectTagStore

// AttributeTagPrefix is the reserved record attribute namespace for applied tags.
const AttributeTagPrefix = tagger.AttributeTagPrefix

// DefaultPenalty is the failure-routing penalty applied when none is configured.
const DefaultPenalty = tagger.DefaultPenalty

// NewTagger creates a tagging operation component.
func NewTagger(ctx context.Context, options ...types.TaggerOption) types.Tagger {
	return tagger.NewTagger(ctx, options...)
}

// ValidateTaggerConfig checks the static templates before use.
func ValidateTaggerConfig(cfg types.TaggerConfig) error {
	return tagger.ValidateConfig(cfg)
}

// TaggerWithTagStore injects the remote store capability.
func TaggerWithTagStore(store types.ObjectTagStore) types.TaggerOption {
	return tagger.WithTagStore(store)
}

// TaggerWithConfig sets the operation parameters.
func TaggerWithConfig(cfg types.TaggerConfig) types.TaggerOption {
	return tagger.WithTaggerConfig(cfg)
}

// TaggerWithLogger adds one or more loggers to the tagger.
func TaggerWithLogger(l ...types.Logger) types.TaggerOption {
	return tagger.WithLogger(l...)
}

// TaggerWithSensor adds sensors to the tagger.
func TaggerWithSensor(s ...types.Sensor) types.TaggerOption {
	return tagger.WithSensor(s...)
}

// TaggerWithComponentMetadata adds component metadata overrides.
func TaggerWithComponentMetadata(name string, id string) types.TaggerOption {
	return tagger.WithComponentMetadata(name, id)
}

// TaggerWithOutputBuffer sets the success/failure output capacity.
func TaggerWithOutputBuffer(size int) types.TaggerOption {
	return tagger.WithOutputBuffer(size)
}
