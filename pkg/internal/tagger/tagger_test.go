package tagger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/joeydtaylor/wiremarker/pkg/internal/record"
	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
)

type setCall struct {
	bucket    string
	key       string
	versionID string
	tags      []types.Tag
}

// stubStore is an in-memory ObjectTagStore recording calls.
type stubStore struct {
	tags     []types.Tag
	getErr   error
	setErr   error
	getCalls int
	setCalls []setCall
}

func (s *stubStore) GetObjectTags(ctx context.Context, bucket string, key string) ([]types.Tag, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	out := make([]types.Tag, len(s.tags))
	copy(out, s.tags)
	return out, nil
}

func (s *stubStore) SetObjectTags(ctx context.Context, bucket string, key string, versionID string, tags []types.Tag) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.setCalls = append(s.setCalls, setCall{bucket: bucket, key: key, versionID: versionID, tags: tags})
	return nil
}

func newTestTagger(t *testing.T, store types.ObjectTagStore, cfg types.TaggerConfig) types.Tagger {
	t.Helper()
	return NewTagger(context.Background(),
		WithTagStore(store),
		WithTaggerConfig(cfg),
	)
}

func drainOne(t *testing.T, ch chan types.Record) types.Record {
	t.Helper()
	select {
	case rec := <-ch:
		return rec
	default:
		t.Fatalf("expected a routed record")
		return nil
	}
}

func assertEmpty(t *testing.T, ch chan types.Record, name string) {
	t.Helper()
	select {
	case <-ch:
		t.Fatalf("expected %s output to be empty", name)
	default:
	}
}

func TestProcess_AppendReplacesSameKeyPreservesOthers(t *testing.T) {
	store := &stubStore{tags: []types.Tag{
		{Key: "color", Value: "red"},
		{Key: "size", Value: "M"},
	}}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "data/a.csv",
		TagKey: "size", TagValue: "L",
		AppendTag: true,
	})

	rec := record.NewRecord()
	tg.Process(context.Background(), rec)

	if len(store.setCalls) != 1 {
		t.Fatalf("expected one set call, got %d", len(store.setCalls))
	}
	applied := store.setCalls[0].tags
	want := []types.Tag{{Key: "color", Value: "red"}, {Key: "size", Value: "L"}}
	if len(applied) != len(want) {
		t.Fatalf("expected %v, got %v", want, applied)
	}
	for i := range want {
		if applied[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, applied)
		}
	}

	if v, _ := rec.Attribute("s3.tag.size"); v != "L" {
		t.Fatalf("expected s3.tag.size=L, got %q", v)
	}
	if _, ok := rec.Attribute("s3.tag.color"); ok {
		t.Fatalf("s3.tag.color must not appear unless set by a prior invocation")
	}

	drainOne(t, tg.GetSuccessOutput())
	assertEmpty(t, tg.GetFailureOutput(), "failure")
}

func TestProcess_AppendNewKeyAppendedLast(t *testing.T) {
	store := &stubStore{tags: []types.Tag{
		{Key: "color", Value: "red"},
		{Key: "size", Value: "M"},
	}}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		TagKey: "status", TagValue: "archived",
		AppendTag: true,
	})

	tg.Process(context.Background(), record.NewRecord())

	applied := store.setCalls[0].tags
	if len(applied) != 3 {
		t.Fatalf("expected 3 tags, got %v", applied)
	}
	if applied[0].Key != "color" || applied[1].Key != "size" {
		t.Fatalf("prior order not preserved: %v", applied)
	}
	if applied[2].Key != "status" || applied[2].Value != "archived" {
		t.Fatalf("new tag must be appended last: %v", applied)
	}
}

func TestProcess_ReplaceModeSendsSingleTagWithoutGet(t *testing.T) {
	store := &stubStore{tags: []types.Tag{{Key: "color", Value: "red"}}}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		TagKey: "status", TagValue: "archived",
		AppendTag: false,
	})

	rec := record.NewRecord(record.WithAttributes(map[string]string{"s3.tag.color": "red"}))
	tg.Process(context.Background(), rec)

	if store.getCalls != 0 {
		t.Fatalf("replace mode must not fetch existing tags, got %d get calls", store.getCalls)
	}
	applied := store.setCalls[0].tags
	if len(applied) != 1 || applied[0] != (types.Tag{Key: "status", Value: "archived"}) {
		t.Fatalf("expected single status tag, got %v", applied)
	}

	if _, ok := rec.Attribute("s3.tag.color"); ok {
		t.Fatalf("replace mode must clear prior s3.tag.* attributes")
	}
	if v, _ := rec.Attribute("s3.tag.status"); v != "archived" {
		t.Fatalf("expected s3.tag.status=archived, got %q", v)
	}
}

func TestProcess_VersionRouting(t *testing.T) {
	store := &stubStore{}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		VersionID: "  ",
		TagKey:    "a", TagValue: "1",
		AppendTag: false,
	})
	tg.Process(context.Background(), record.NewRecord())
	if got := store.setCalls[0].versionID; got != "" {
		t.Fatalf("blank version must issue the version-less call, got %q", got)
	}

	store2 := &stubStore{}
	tg2 := newTestTagger(t, store2, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		VersionID: "{s3.version}",
		TagKey:    "a", TagValue: "1",
		AppendTag: false,
	})
	rec := record.NewRecord(record.WithAttributes(map[string]string{"s3.version": "v42"}))
	tg2.Process(context.Background(), rec)
	if got := store2.setCalls[0].versionID; got != "v42" {
		t.Fatalf("expected exact version v42, got %q", got)
	}
}

func TestProcess_GetErrorRoutesToFailureUntouched(t *testing.T) {
	store := &stubStore{getErr: errors.New("access denied")}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		TagKey: "a", TagValue: "1",
		AppendTag: true,
	})

	rec := record.NewRecord(record.WithAttributes(map[string]string{"s3.tag.color": "red"}))
	tg.Process(context.Background(), rec)

	routed := drainOne(t, tg.GetFailureOutput())
	assertEmpty(t, tg.GetSuccessOutput(), "success")
	if routed.ID() != rec.ID() {
		t.Fatalf("wrong record routed")
	}
	if len(store.setCalls) != 0 {
		t.Fatalf("no set call may follow a failed get")
	}
	if v, _ := rec.Attribute("s3.tag.color"); v != "red" {
		t.Fatalf("failure path must not mutate attributes")
	}
	if _, active := rec.PenaltyExpiry(); !active {
		t.Fatalf("failed record must be penalized")
	}
}

func TestProcess_SetErrorRoutesToFailureUntouched(t *testing.T) {
	store := &stubStore{setErr: errors.New("throttled")}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		TagKey: "a", TagValue: "1",
		AppendTag: false,
	})

	rec := record.NewRecord(record.WithAttributes(map[string]string{"s3.tag.old": "x"}))
	tg.Process(context.Background(), rec)

	drainOne(t, tg.GetFailureOutput())
	assertEmpty(t, tg.GetSuccessOutput(), "success")
	if _, ok := rec.Attribute("s3.tag.old"); !ok {
		t.Fatalf("failure path must leave prior attributes in place")
	}
	if _, ok := rec.Attribute("s3.tag.a"); ok {
		t.Fatalf("failure path must not write the new attribute")
	}
}

func TestProcess_NilRecordIsNoOp(t *testing.T) {
	store := &stubStore{}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k", TagKey: "a", TagValue: "1", AppendTag: true,
	})

	tg.Process(context.Background(), nil)

	assertEmpty(t, tg.GetSuccessOutput(), "success")
	assertEmpty(t, tg.GetFailureOutput(), "failure")
	if store.getCalls != 0 || len(store.setCalls) != 0 {
		t.Fatalf("nil record must not touch the store")
	}
}

func TestProcess_InterpolatesBucketAndKey(t *testing.T) {
	store := &stubStore{}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "{env}-archive", Key: "in/{filename}",
		TagKey: "a", TagValue: "1",
		AppendTag: false,
	})

	rec := record.NewRecord(record.WithAttributes(map[string]string{
		"env":      "prod",
		"filename": "report.csv",
	}))
	tg.Process(context.Background(), rec)

	call := store.setCalls[0]
	if call.bucket != "prod-archive" || call.key != "in/report.csv" {
		t.Fatalf("interpolation failed: %+v", call)
	}
}

func TestProcess_ResolvedTagKeyTooLongFails(t *testing.T) {
	store := &stubStore{}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		TagKey: strings.Repeat("k", types.MaxTagKeyLength+1), TagValue: "1",
		AppendTag: true,
	})

	rec := record.NewRecord()
	tg.Process(context.Background(), rec)

	drainOne(t, tg.GetFailureOutput())
	if store.getCalls != 0 || len(store.setCalls) != 0 {
		t.Fatalf("invalid parameters must not reach the store")
	}
}

func TestProcess_TagLimitsCountCharactersNotBytes(t *testing.T) {
	// 127 two-byte runes: within the character limit, over the byte count.
	key := strings.Repeat("é", types.MaxTagKeyLength)

	store := &stubStore{}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		TagKey: key, TagValue: "1",
		AppendTag: false,
	})

	tg.Process(context.Background(), record.NewRecord())

	if len(store.setCalls) != 1 {
		t.Fatalf("multi-byte key within the character limit must be accepted")
	}
	if store.setCalls[0].tags[0].Key != key {
		t.Fatalf("tag key altered: %q", store.setCalls[0].tags[0].Key)
	}
	drainOne(t, tg.GetSuccessOutput())
}

func TestProcess_CancelledContextStillRoutesFailure(t *testing.T) {
	store := &stubStore{setErr: errors.New("throttled")}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k",
		TagKey: "a", TagValue: "1",
		AppendTag: false,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := record.NewRecord()
	tg.Process(ctx, rec)

	routed := drainOne(t, tg.GetFailureOutput())
	if routed.ID() != rec.ID() {
		t.Fatalf("record must still land on the failure output after cancellation")
	}
}

func TestProcess_MissingStoreRoutesToFailure(t *testing.T) {
	tg := NewTagger(context.Background(), WithTaggerConfig(types.TaggerConfig{
		Bucket: "archive", Key: "k", TagKey: "a", TagValue: "1",
	}))

	rec := record.NewRecord()
	tg.Process(context.Background(), rec)
	drainOne(t, tg.GetFailureOutput())
}

func TestServe_DrainsUntilClose(t *testing.T) {
	store := &stubStore{}
	tg := newTestTagger(t, store, types.TaggerConfig{
		Bucket: "archive", Key: "k", TagKey: "a", TagValue: "1", AppendTag: false,
	})

	in := make(chan types.Record, 2)
	in <- record.NewRecord()
	in <- record.NewRecord()
	close(in)

	done := make(chan error, 1)
	go func() { done <- tg.Serve(context.Background(), in) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Serve did not return after input close")
	}

	if len(store.setCalls) != 2 {
		t.Fatalf("expected 2 processed records, got %d", len(store.setCalls))
	}
	if len(tg.GetSuccessOutput()) != 2 {
		t.Fatalf("expected 2 records on success output")
	}
}

func TestServe_NilInputRejected(t *testing.T) {
	tg := NewTagger(context.Background())
	if err := tg.Serve(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil input channel")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := types.TaggerConfig{Bucket: "b", Key: "k", TagKey: "a", TagValue: "1"}
	if err := ValidateConfig(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, cfg := range map[string]types.TaggerConfig{
		"missing bucket":    {Key: "k", TagKey: "a", TagValue: "1"},
		"missing key":       {Bucket: "b", TagKey: "a", TagValue: "1"},
		"missing tag key":   {Bucket: "b", Key: "k", TagValue: "1"},
		"missing tag value": {Bucket: "b", Key: "k", TagKey: "a"},
	} {
		if err := ValidateConfig(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestSetTaggerConfig_NormalizesPenalty(t *testing.T) {
	tg := NewTagger(context.Background()).(*Tagger)
	tg.SetTaggerConfig(types.TaggerConfig{Bucket: "b", Key: "k", TagKey: "a", TagValue: "1"})
	if tg.config.Penalty != DefaultPenalty {
		t.Fatalf("expected default penalty, got %v", tg.config.Penalty)
	}
}

func TestSensorHooks(t *testing.T) {
	var appliedTags []types.Tag
	var failures int

	s := &hookSensor{
		onTagApplied: func(tag types.Tag) { appliedTags = append(appliedTags, tag) },
		onFailure:    func() { failures++ },
	}

	store := &stubStore{}
	tg := NewTagger(context.Background(),
		WithTagStore(store),
		WithTaggerConfig(types.TaggerConfig{Bucket: "b", Key: "k", TagKey: "a", TagValue: "1", AppendTag: false}),
		WithSensor(s),
	)

	tg.Process(context.Background(), record.NewRecord())
	store.setErr = errors.New("boom")
	tg.Process(context.Background(), record.NewRecord())

	if len(appliedTags) != 1 || appliedTags[0].Key != "a" {
		t.Fatalf("expected one applied-tag callback, got %v", appliedTags)
	}
	if failures != 1 {
		t.Fatalf("expected one failure callback, got %d", failures)
	}
}

// hookSensor is a minimal types.Sensor for callback assertions.
type hookSensor struct {
	onTagApplied func(types.Tag)
	onFailure    func()
}

func (h *hookSensor) RegisterOnStart(...func(types.ComponentMetadata)) {}

func (h *hookSensor) InvokeOnStart(types.ComponentMetadata) {}

func (h *hookSensor) RegisterOnTagApplied(...func(types.ComponentMetadata, types.Record, types.Tag)) {
}

func (h *hookSensor) InvokeOnTagApplied(cm types.ComponentMetadata, rec types.Record, tag types.Tag) {
	if h.onTagApplied != nil {
		h.onTagApplied(tag)
	}
}

func (h *hookSensor) RegisterOnFailure(...func(types.ComponentMetadata, types.Record, error)) {}

func (h *hookSensor) InvokeOnFailure(types.ComponentMetadata, types.Record, error) {
	if h.onFailure != nil {
		h.onFailure()
	}
}

func (h *hookSensor) RegisterOnStop(...func(types.ComponentMetadata)) {}

func (h *hookSensor) InvokeOnStop(types.ComponentMetadata) {}

func (h *hookSensor) ConnectLogger(...types.Logger) {}

func (h *hookSensor) NotifyLoggers(types.LogLevel, string, ...interface{}) {}

func (h *hookSensor) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{}
}

func (h *hookSensor) SetComponentMetadata(string, string) {}
