package builder

import (
	"context"
	"testing"
)

func TestValidateTaggerConfig(t *testing.T) {
	if err := ValidateTaggerConfig(TaggerConfig{Bucket: "b", Key: "k", TagKey: "a", TagValue: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateTaggerConfig(TaggerConfig{}); err == nil {
		t.Fatalf("expected error for empty config")
	}
}

func TestNewRecordFacade(t *testing.T) {
	rec := NewRecord(
		RecordWithID("r-1"),
		RecordWithAttributes(map[string]string{"filename": "a.csv"}),
	)
	if rec.ID() != "r-1" {
		t.Fatalf("expected r-1, got %q", rec.ID())
	}
	if v, _ := rec.Attribute("filename"); v != "a.csv" {
		t.Fatalf("expected a.csv, got %q", v)
	}
}

func TestNewTaggerFacadeRoutesWithoutStore(t *testing.T) {
	tg := NewTagger(context.Background(),
		TaggerWithConfig(TaggerConfig{Bucket: "b", Key: "k", TagKey: "a", TagValue: "1"}),
		TaggerWithComponentMetadata("facade-tagger", "id-1"),
	)
	if tg.GetComponentMetadata().Name != "facade-tagger" {
		t.Fatalf("metadata override not applied")
	}

	tg.Process(context.Background(), NewRecord())
	select {
	case <-tg.GetFailureOutput():
	default:
		t.Fatalf("expected failure routing without a store")
	}
}

func TestNewSensorFacade(t *testing.T) {
	s := NewSensor()
	if s.GetComponentMetadata().Type != "SENSOR" {
		t.Fatalf("unexpected sensor type %q", s.GetComponentMetadata().Type)
	}
}

func TestNewS3TagStoreFacade(t *testing.T) {
	store := NewS3TagStore()
	if store.Name() != "S3_TAG_STORE" {
		t.Fatalf("unexpected store name %q", store.Name())
	}
	if _, err := store.GetObjectTags(context.Background(), "b", "k"); err == nil {
		t.Fatalf("expected error without a client")
	}
}
