package builder

import (
	"github.com/joeydtaylor/wiremarker/pkg/internal/record"
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// Record is the flow record contract.
type Record = types.Record

// NewRecord constructs a flow record.
func NewRecord(options ...types.Option[*record.Record]) types.Record {
	return record.NewRecord(options...)
}

// RecordWithAttributes seeds the record with initial attributes.
func RecordWithAttributes(attrs map[string]string) types.Option[*record.Record] {
	return record.WithAttributes(attrs)
}

// RecordWithID overrides the generated record ID.
func RecordWithID(id string) types.Option[*record.Record] {
	return record.WithID(id)
}
