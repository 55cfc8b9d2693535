// pkg/internal/types/tagger.go
package types

import (
	"context"
	"time"
)

// Tag key/value limits applied to resolved tagger parameters.
const (
	MaxTagKeyLength   = 127
	MaxTagValueLength = 255
)

// TaggerConfig holds the per-operation parameters. The string fields are
// templates: "{attr}" placeholders are resolved against the triggering record's
// attributes on every invocation.
type TaggerConfig struct {
	Bucket    string // required; bucket holding the object
	Key       string // required; object key
	VersionID string // optional; blank targets the current version
	TagKey    string // required; 1-127 chars after resolution
	TagValue  string // required; 1-255 chars after resolution

	// AppendTag merges the new tag into the object's existing tag set,
	// overwriting only a same-key entry. When false, all prior tags are
	// discarded and the new tag becomes the sole entry.
	AppendTag bool

	// Penalty is applied to a record before failure routing. Zero means the
	// default penalty.
	Penalty time.Duration
}

// Tagger applies one tag to a stored object per record and mirrors the applied
// tag onto the record's attributes. Every non-nil record ends up on exactly one
// of the two outputs.
type Tagger interface {
	SetTagStore(ObjectTagStore)
	SetTaggerConfig(TaggerConfig)

	// Process runs the operation for a single record. A nil record is a no-op.
	Process(ctx context.Context, rec Record)

	// Serve drains records from in until ctx is done or in closes.
	Serve(ctx context.Context, in <-chan Record) error

	GetSuccessOutput() chan Record
	GetFailureOutput() chan Record

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	Name() string
	Stop()
}

// TaggerOption configures a Tagger.
type TaggerOption func(Tagger)
