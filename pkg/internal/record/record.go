// Package record implements the concrete flow record: a unit of work carrying a
// mutable string attribute map. Components borrow a record for one invocation;
// the surrounding flow owns its lifecycle and routes it between queues.
package record

import (
	"strings"
	"sync"
	"time"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
	"github.com/joeydtaylor/wiremarker/pkg/internal/utils"
)

// Record is the default types.Record implementation. Safe for concurrent use.
type Record struct {
	id string

	mu            sync.Mutex
	attributes    map[string]string
	penaltyExpiry time.Time
}

// NewRecord constructs a Record with a generated ID and applies options.
func NewRecord(options ...types.Option[*Record]) *Record {
	r := &Record{
		id:         utils.GenerateUniqueHash(),
		attributes: make(map[string]string),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r
}

// WithAttributes seeds the record with initial attributes.
func WithAttributes(attrs map[string]string) types.Option[*Record] {
	return func(r *Record) {
		r.SetAttributes(attrs)
	}
}

// WithID overrides the generated record ID.
func WithID(id string) types.Option[*Record] {
	return func(r *Record) {
		if id != "" {
			r.id = id
		}
	}
}

// ID returns the record's stable unique identifier.
func (r *Record) ID() string { return r.id }

// Attribute returns the value for key and whether it was present.
func (r *Record) Attribute(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.attributes[key]
	return v, ok
}

// SetAttribute sets a single attribute, overwriting any prior value.
func (r *Record) SetAttribute(key string, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attributes[key] = value
}

// SetAttributes merges the given attributes into the record.
func (r *Record) SetAttributes(attrs map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range attrs {
		if k == "" {
			continue
		}
		r.attributes[k] = v
	}
}

// AttributeSnapshot returns a copy of the current attribute map.
func (r *Record) AttributeSnapshot() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.attributes))
	for k, v := range r.attributes {
		out[k] = v
	}
	return out
}

// RemoveAttributesWithPrefix deletes every attribute whose key starts with
// prefix and returns the number of entries removed. A scan over the map, not a
// pattern match.
func (r *Record) RemoveAttributesWithPrefix(prefix string) int {
	if prefix == "" {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for k := range r.attributes {
		if strings.HasPrefix(k, prefix) {
			delete(r.attributes, k)
			removed++
		}
	}
	return removed
}

// Penalize defers reprocessing of the record by d. A later deadline never
// shortens an earlier one.
func (r *Record) Penalize(d time.Duration) {
	if d <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	expiry := time.Now().Add(d)
	if expiry.After(r.penaltyExpiry) {
		r.penaltyExpiry = expiry
	}
}

// PenaltyExpiry reports the penalty deadline and whether one is still active.
func (r *Record) PenaltyExpiry() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.penaltyExpiry.IsZero() || !r.penaltyExpiry.After(time.Now()) {
		return time.Time{}, false
	}
	return r.penaltyExpiry, true
}
