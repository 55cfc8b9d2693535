// pkg/internal/tagger/api.go
package tagger

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

// Process runs the operation for a single record. A nil record is a no-op. The
// record ends up on exactly one of the two outputs; attributes are only touched
// on the success path.
//
// Every store error, object-not-found included, routes to failure. The get is
// only issued in append mode; the get-then-set sequence is strictly ordered.
func (t *Tagger) Process(ctx context.Context, rec types.Record) {
	if rec == nil {
		return
	}

	start := time.Now()

	params, err := t.resolveParameters(rec)
	if err != nil {
		t.fail(ctx, rec, err)
		return
	}

	if t.store == nil {
		t.fail(ctx, rec, fmt.Errorf("tagger: no tag store configured"))
		return
	}

	var tags []types.Tag
	if t.config.AppendTag {
		current, err := t.store.GetObjectTags(ctx, params.bucket, params.key)
		if err != nil {
			t.fail(ctx, rec, err)
			return
		}
		// Preserve the object's tags, minus any entry for the key being set;
		// the new tag must be the sole entry for that key afterward.
		for _, tag := range current {
			if tag.Key != params.tagKey {
				tags = append(tags, tag)
			}
		}
	}

	applied := types.Tag{Key: params.tagKey, Value: params.tagValue}
	tags = append(tags, applied)

	if err := t.store.SetObjectTags(ctx, params.bucket, params.key, params.versionID, tags); err != nil {
		t.fail(ctx, rec, err)
		return
	}

	if !t.config.AppendTag {
		// Replace mode discards all prior tags remotely; clear their mirrored
		// attributes so the record does not advertise tags that no longer exist.
		rec.RemoveAttributesWithPrefix(AttributeTagPrefix)
	}
	rec.SetAttribute(AttributeTagPrefix+params.tagKey, params.tagValue)

	for _, sensor := range t.snapshotSensors() {
		if sensor == nil {
			continue
		}
		sensor.InvokeOnTagApplied(t.componentMetadata, rec, applied)
	}

	t.route(ctx, t.successOut, rec)

	t.NotifyLoggers(types.InfoLevel, "Tagged object, routing to success",
		"component", t.componentMetadata,
		"event", "Process",
		"result", "SUCCESS",
		"record", rec.ID(),
		"bucket", params.bucket,
		"key", params.key,
		"tagKey", params.tagKey,
		"durationMs", time.Since(start).Milliseconds(),
	)
}

// Serve drains records from in until ctx is done or in closes.
func (t *Tagger) Serve(ctx context.Context, in <-chan types.Record) error {
	if in == nil {
		return fmt.Errorf("tagger: Serve requires an input channel")
	}
	if !atomic.CompareAndSwapInt32(&t.isServing, 0, 1) {
		return nil
	}
	defer atomic.StoreInt32(&t.isServing, 0)

	for _, sensor := range t.snapshotSensors() {
		if sensor == nil {
			continue
		}
		sensor.InvokeOnStart(t.componentMetadata)
	}
	t.NotifyLoggers(types.InfoLevel, "Tagger serving",
		"component", t.componentMetadata,
		"event", "Serve",
		"result", "SUCCESS",
	)
	defer func() {
		for _, sensor := range t.snapshotSensors() {
			if sensor == nil {
				continue
			}
			sensor.InvokeOnStop(t.componentMetadata)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.ctx.Done():
			return nil
		case rec, ok := <-in:
			if !ok {
				return nil
			}
			t.Process(ctx, rec)
		}
	}
}

// fail absorbs a processing error at the operation boundary: the record is
// penalized and routed to failure with its attributes untouched, and nothing
// propagates to the caller.
func (t *Tagger) fail(ctx context.Context, rec types.Record, err error) {
	rec.Penalize(t.config.Penalty)

	for _, sensor := range t.snapshotSensors() {
		if sensor == nil {
			continue
		}
		sensor.InvokeOnFailure(t.componentMetadata, rec, err)
	}

	t.route(ctx, t.failureOut, rec)

	t.NotifyLoggers(types.ErrorLevel, "Failed to tag object, routing to failure",
		"component", t.componentMetadata,
		"event", "Process",
		"result", "FAILURE",
		"record", rec.ID(),
		"error", err,
	)
}

// route delivers rec to out. Delivery survives caller cancellation as long as
// the output has capacity; a record is dropped, with a warning, only when the
// context is done and the output is already full.
func (t *Tagger) route(ctx context.Context, out chan types.Record, rec types.Record) {
	select {
	case out <- rec:
		return
	case <-ctx.Done():
	}

	select {
	case out <- rec:
	default:
		t.NotifyLoggers(types.WarnLevel, "Routing abandoned, context done and output full",
			"component", t.componentMetadata,
			"event", "Route",
			"record", rec.ID(),
		)
	}
}
