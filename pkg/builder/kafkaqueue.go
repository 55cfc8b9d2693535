// pkg/builder/kafkaqueue.go
package builder

import (
	"context"

	"github.com/joeydtaylor/wiremarker/pkg/internal/adapter/kafkaqueue"
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// KafkaQueueConfig configures the queue drain writer.
type KafkaQueueConfig = types.KafkaQueueConfig

// NewKafkaQueue creates a queue drain producing record snapshots to a Kafka topic.
func NewKafkaQueue(ctx context.Context, options ...types.KafkaQueueOption) types.KafkaQueue {
	return kafkaqueue.NewKafkaQueue(ctx, options...)
}

func KafkaQueueWithConfig(cfg types.KafkaQueueConfig) types.KafkaQueueOption {
	return kafkaqueue.WithQueueConfig(cfg)
}

func KafkaQueueWithLogger(l ...types.Logger) types.KafkaQueueOption {
	return kafkaqueue.WithLogger(l...)
}
