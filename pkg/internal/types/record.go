package types

import "time"

// Record is a single unit of work moving through a flow. It carries a mutable
// string attribute map that operations read and write; the surrounding flow owns
// the record's lifecycle (creation, queueing, destruction) and only lends it to a
// component for the duration of one invocation.
type Record interface {
	// ID returns the record's stable unique identifier.
	ID() string

	// Attribute returns the value for key and whether it was present.
	Attribute(key string) (string, bool)

	// SetAttribute sets a single attribute, overwriting any prior value.
	SetAttribute(key string, value string)

	// SetAttributes merges the given attributes into the record.
	SetAttributes(attrs map[string]string)

	// AttributeSnapshot returns a copy of the current attribute map.
	AttributeSnapshot() map[string]string

	// RemoveAttributesWithPrefix deletes every attribute whose key starts with
	// prefix and returns the number of entries removed.
	RemoveAttributesWithPrefix(prefix string) int

	// Penalize defers reprocessing of the record by d; schedulers draining a
	// failure output honor the resulting deadline.
	Penalize(d time.Duration)

	// PenaltyExpiry reports the penalty deadline and whether one is active.
	PenaltyExpiry() (time.Time, bool)
}
