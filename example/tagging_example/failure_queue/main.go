package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joeydtaylor/wiremarker/pkg/builder"
)

// Streams records into a served tagger and drains both outputs: successes
// are logged, failures are forwarded to a Kafka dead-letter topic.
//
// Setup:
//   awslocal s3 mb s3://demo-bucket
//   kafka-topics --create --topic tagging-dlq --bootstrap-server localhost:9092
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))

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

	tagger := builder.NewTagger(
		ctx,
		builder.TaggerWithTagStore(builder.NewS3TagStore(builder.S3TagStoreWithClient(client))),
		builder.TaggerWithLogger(logger),
		builder.TaggerWithConfig(builder.TaggerConfig{
			Bucket:    "demo-bucket",
			Key:       "{filename}",
			TagKey:    "retention",
			TagValue:  "{retention}",
			AppendTag: true,
		}),
	)

	input := make(chan builder.Record)
	if err := tagger.Serve(ctx, input); err != nil {
		fmt.Printf("serve: %v\n", err)
		return
	}

	dlq := builder.NewKafkaQueue(
		ctx,
		builder.KafkaQueueWithLogger(logger),
		builder.KafkaQueueWithConfig(builder.KafkaQueueConfig{
			Brokers:         []string{"localhost:9092"},
			Topic:           "tagging-dlq",
			BatchMaxRecords: 50,
			BatchMaxAge:     2 * time.Second,
		}),
	)
	go func() {
		if err := dlq.ServeWriter(ctx, tagger.GetFailureOutput()); err != nil {
			fmt.Printf("dlq writer: %v\n", err)
		}
	}()

	go func() {
		for rec := range tagger.GetSuccessOutput() {
			tag, _ := rec.Attribute(builder.AttributeTagPrefix + "retention")
			fmt.Printf("Tagged %s with retention=%s\n", rec.ID(), tag)
		}
	}()

	go func() {
		files := []string{"a.csv", "b.csv", "missing.csv", "c.csv"}
		for _, f := range files {
			input <- builder.NewRecord(builder.RecordWithAttributes(map[string]string{
				"filename":  f,
				"retention": "30d",
			}))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case <-time.After(10 * time.Second):
	}

	close(input)
	time.Sleep(500 * time.Millisecond)
	tagger.Stop()
	dlq.Stop()
	fmt.Println("Pipeline terminated.")
}
