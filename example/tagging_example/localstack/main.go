package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/wiremarker/pkg/builder"
)

// Tags an object in a LocalStack bucket and prints the record attributes
// after the tag has been mirrored back.
//
// Setup:
//   awslocal s3 mb s3://demo-bucket
//   awslocal s3 cp report.csv s3://demo-bucket/incoming/report.csv
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := builder.NewLogger(
		builder.LoggerWithDevelopment(true),
		builder.LoggerWithLevel("debug"),
	)

	client, err := builder.NewS3ClientStatic(
		ctx,
		"us-east-1",
		"test", "test", "",
		"http://localhost:4566",
		true,
	)
	if err != nil {
		fmt.Printf("s3 client: %v\n", err)
		return
	}

	store := builder.NewS3TagStore(
		builder.S3TagStoreWithClient(client),
		builder.S3TagStoreWithLogger(logger),
	)

	sensor := builder.NewSensor(
		builder.SensorWithOnTagApplied(func(c builder.ComponentMetadata, rec builder.Record, tag builder.Tag) {
			fmt.Printf("%v -> Applied %s=%s to record %s\n", c, tag.Key, tag.Value, rec.ID())
		}),
		builder.SensorWithOnFailure(func(c builder.ComponentMetadata, rec builder.Record, err error) {
			fmt.Printf("%v -> Tagging failed for record %s: %v\n", c, rec.ID(), err)
		}),
	)

	tagger := builder.NewTagger(
		ctx,
		builder.TaggerWithTagStore(store),
		builder.TaggerWithLogger(logger),
		builder.TaggerWithSensor(sensor),
		builder.TaggerWithConfig(builder.TaggerConfig{
			Bucket:    "demo-bucket",
			Key:       "incoming/{filename}",
			TagKey:    "pipeline-stage",
			TagValue:  "{stage}",
			AppendTag: true,
			Penalty:   10 * time.Second,
		}),
	)

	rec := builder.NewRecord(
		builder.RecordWithAttributes(map[string]string{
			"filename": "report.csv",
			"stage":    "validated",
		}),
	)

	tagger.Process(ctx, rec)

	select {
	case out := <-tagger.GetSuccessOutput():
		fmt.Println("Tagged successfully. Record attributes:")
		for k, v := range out.AttributeSnapshot() {
			fmt.Printf("  %s=%s\n", k, v)
		}
	case out := <-tagger.GetFailureOutput():
		expiry, _ := out.PenaltyExpiry()
		fmt.Printf("Tagging failed; record penalized until %s\n", expiry.Format(time.RFC3339))
	}

	tagger.Stop()
}
