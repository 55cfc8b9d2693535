// pkg/internal/adapter/kafkaqueue/kafkaqueue.go
package kafkaqueue

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
	"github.com/joeydtaylor/wiremarker/pkg/internal/utils"
)

// producer is the slice of kafka-go's writer surface this adapter needs;
// *kafka.Writer satisfies it.
type producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaQueue drains routed records into a Kafka topic as JSON snapshots, one
// message per record, keyed by record ID. Operators inspect success/failure
// queues from the topic instead of attaching to the process.
type KafkaQueue struct {
	componentMetadata types.ComponentMetadata
	ctx               context.Context
	cancel            context.CancelFunc
	isServing         int32 // atomic

	loggers     []types.Logger
	loggersLock sync.Mutex

	producer    producer
	ownProducer bool

	topic           string
	brokers         []string
	batchMaxRecords int
	batchMaxAge     time.Duration
}

// NewKafkaQueue constructs the queue drain and applies options.
func NewKafkaQueue(ctx context.Context, options ...types.KafkaQueueOption) types.KafkaQueue {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	q := &KafkaQueue{
		ctx:    ctx,
		cancel: cancel,
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "KAFKA_QUEUE",
		},
		loggers:         make([]types.Logger, 0),
		batchMaxRecords: 100,
		batchMaxAge:     time.Second,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(q)
	}

	if q.producer == nil && len(q.brokers) > 0 && q.topic != "" {
		q.producer = &kafka.Writer{
			Addr:     kafka.TCP(q.brokers...),
			Topic:    q.topic,
			Balancer: &kafka.Hash{},
		}
		q.ownProducer = true
	}

	return q
}

// SetQueueConfig applies brokers, topic, and batching thresholds.
func (q *KafkaQueue) SetQueueConfig(c types.KafkaQueueConfig) {
	if len(c.Brokers) > 0 {
		q.brokers = c.Brokers
	}
	if c.Topic != "" {
		q.topic = c.Topic
	}
	if c.BatchMaxRecords > 0 {
		q.batchMaxRecords = c.BatchMaxRecords
	}
	if c.BatchMaxAge > 0 {
		q.batchMaxAge = c.BatchMaxAge
	}
}

func (q *KafkaQueue) Name() string { return "KAFKA_QUEUE" }

// Stop cancels the drain and closes a writer this component constructed.
func (q *KafkaQueue) Stop() {
	q.cancel()
	if q.ownProducer {
		if w, ok := q.producer.(*kafka.Writer); ok {
			_ = w.Close()
		}
	}
}

func (q *KafkaQueue) GetComponentMetadata() types.ComponentMetadata { return q.componentMetadata }

func (q *KafkaQueue) SetComponentMetadata(name string, id string) {
	q.componentMetadata.Name = name
	q.componentMetadata.ID = id
}

func (q *KafkaQueue) ConnectLogger(l ...types.Logger) {
	q.loggersLock.Lock()
	defer q.loggersLock.Unlock()
	q.loggers = append(q.loggers, l...)
}

func (q *KafkaQueue) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	q.loggersLock.Lock()
	defer q.loggersLock.Unlock()
	for _, logger := range q.loggers {
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
