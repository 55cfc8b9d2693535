// pkg/internal/types/kafka_queue.go
package types

import (
	"context"
	"time"
)

// KafkaQueueConfig configures the queue drain writer.
type KafkaQueueConfig struct {
	Brokers []string // required when no preconstructed writer is injected
	Topic   string   // required

	BatchMaxRecords int           // default 100
	BatchMaxAge     time.Duration // default 1s
}

// KafkaQueue drains routed records into a Kafka topic as JSON snapshots so
// operators can inspect success/failure queues outside the process.
type KafkaQueue interface {
	SetQueueConfig(KafkaQueueConfig)

	// ServeWriter reads records from in and produces one message per record
	// until ctx is done or in closes.
	ServeWriter(ctx context.Context, in <-chan Record) error

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	Name() string
	Stop()
}

// KafkaQueueOption configures a KafkaQueue.
type KafkaQueueOption func(KafkaQueue)
