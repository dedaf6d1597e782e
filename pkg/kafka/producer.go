package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// ProducerConfig holds configuration for the Kafka producer
type ProducerConfig struct {
	Brokers  []string
	ClientID string
}

// Producer is a thin wrapper around the franz-go client for producing
// JSON-encoded messages.
type Producer struct {
	client *kgo.Client
}

// NewProducer creates a new Kafka producer and verifies the connection
func NewProducer(ctx context.Context, cfg *ProducerConfig) (*Producer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Kafka: %w", err)
	}

	return &Producer{client: client}, nil
}

// ProduceJSON marshals value as JSON and produces it to topic, keyed by key.
// The call blocks until the broker acknowledges the record.
func (p *Producer) ProduceJSON(ctx context.Context, topic, key string, value interface{}, headers map[string]string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	for k, v := range headers {
		record.Headers = append(record.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}

	return p.client.ProduceSync(ctx, record).FirstErr()
}

// Close flushes buffered records and closes the client
func (p *Producer) Close() {
	p.client.Close()
}
