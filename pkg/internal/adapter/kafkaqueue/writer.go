// pkg/internal/adapter/kafkaqueue/writer.go
package kafkaqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// recordSnapshot is the queue message payload: enough for an operator to see
// which record landed on the queue and in what state.
type recordSnapshot struct {
	ID            string            `json:"id"`
	Attributes    map[string]string `json:"attributes"`
	PenaltyExpiry string            `json:"penaltyExpiry,omitempty"`
}

func encodeRecord(rec types.Record) (kafka.Message, error) {
	snap := recordSnapshot{
		ID:         rec.ID(),
		Attributes: rec.AttributeSnapshot(),
	}
	if expiry, active := rec.PenaltyExpiry(); active {
		snap.PenaltyExpiry = expiry.UTC().Format(time.RFC3339)
	}

	val, err := json.Marshal(snap)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Key: []byte(rec.ID()), Value: val}, nil
}

// ServeWriter reads records from in and produces one message per record,
// flushing batches on size or age, until ctx is done or in closes.
func (q *KafkaQueue) ServeWriter(ctx context.Context, in <-chan types.Record) error {
	if q.producer == nil {
		return fmt.Errorf("kafkaqueue: ServeWriter requires brokers and topic or an injected writer")
	}
	if in == nil {
		return fmt.Errorf("kafkaqueue: ServeWriter requires an input channel")
	}
	if !atomic.CompareAndSwapInt32(&q.isServing, 0, 1) {
		return nil
	}
	defer atomic.StoreInt32(&q.isServing, 0)

	q.NotifyLoggers(types.InfoLevel, "Queue drain starting",
		"component", q.componentMetadata,
		"event", "ServeWriter",
		"result", "SUCCESS",
		"topic", q.topic,
	)

	pending := make([]kafka.Message, 0, q.batchMaxRecords)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := q.producer.WriteMessages(ctx, pending...); err != nil {
			q.NotifyLoggers(types.ErrorLevel, "Queue produce failed",
				"component", q.componentMetadata,
				"event", "Produce",
				"result", "FAILURE",
				"topic", q.topic,
				"error", err,
			)
			return err
		}
		q.NotifyLoggers(types.DebugLevel, "Queue batch flushed",
			"component", q.componentMetadata,
			"event", "BatchFlush",
			"result", "SUCCESS",
			"topic", q.topic,
			"records", len(pending),
		)
		pending = pending[:0]
		return nil
	}

	tick := time.NewTicker(q.batchMaxAge)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return flush()
		case <-q.ctx.Done():
			return flush()
		case rec, ok := <-in:
			if !ok {
				return flush()
			}
			if rec == nil {
				continue
			}
			msg, err := encodeRecord(rec)
			if err != nil {
				q.NotifyLoggers(types.ErrorLevel, "Record snapshot encoding failed",
					"component", q.componentMetadata,
					"event", "Encode",
					"result", "FAILURE",
					"record", rec.ID(),
					"error", err,
				)
				continue
			}
			pending = append(pending, msg)
			if len(pending) >= q.batchMaxRecords {
				if err := flush(); err != nil {
					return err
				}
			}
		case <-tick.C:
			if err := flush(); err != nil {
				return err
			}
		}
	}
}
