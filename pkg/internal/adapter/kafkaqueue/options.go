// pkg/internal/adapter/kafkaqueue/options.go
package kafkaqueue

import (
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// WithQueueConfig sets brokers, topic, and batching thresholds.
func WithQueueConfig(cfg types.KafkaQueueConfig) types.KafkaQueueOption {
	return func(q types.KafkaQueue) {
		q.SetQueueConfig(cfg)
	}
}

// WithLogger attaches loggers to the queue drain.
func WithLogger(l ...types.Logger) types.KafkaQueueOption {
	return func(q types.KafkaQueue) {
		q.ConnectLogger(l...)
	}
}

// WithProducer injects a preconstructed writer; the caller keeps ownership and
// is responsible for closing it.
func WithProducer(p producer) types.KafkaQueueOption {
	return func(q types.KafkaQueue) {
		if kq, ok := q.(*KafkaQueue); ok {
			kq.producer = p
			kq.ownProducer = false
		}
	}
}
