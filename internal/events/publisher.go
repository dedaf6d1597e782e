package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stagepass/stagepass/pkg/kafka"
	"github.com/stagepass/stagepass/pkg/logger"
)

// Topic is the Kafka topic entity lifecycle events are published to
const Topic = "stagepass.entity-events"

// Event types
const (
	TypeCreated = "created"
	TypeUpdated = "updated"
	TypeDeleted = "deleted"
)

// Event is an entity lifecycle notification. Internal row ids never leave the
// service; events carry external ids only.
type Event struct {
	Entity     string    `json:"entity"`
	Type       string    `json:"type"`
	ExternalID string    `json:"external_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher publishes entity lifecycle events. Publishing is best-effort:
// callers fire after the write has committed and ignore the returned error
// beyond logging.
type Publisher interface {
	Publish(ctx context.Context, entity, eventType, externalID string) error
	Close()
}

// KafkaPublisher publishes events to Kafka
type KafkaPublisher struct {
	producer *kafka.Producer
}

// NewKafkaPublisher creates a new KafkaPublisher
func NewKafkaPublisher(producer *kafka.Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// Publish sends the event, keyed by external id so events for one entity stay
// ordered within a partition
func (p *KafkaPublisher) Publish(ctx context.Context, entity, eventType, externalID string) error {
	event := &Event{
		Entity:     entity,
		Type:       eventType,
		ExternalID: externalID,
		OccurredAt: time.Now().UTC(),
	}

	headers := map[string]string{
		"entity":     entity,
		"event_type": eventType,
	}

	if err := p.producer.ProduceJSON(ctx, Topic, externalID, event, headers); err != nil {
		logger.Warn("Failed to publish entity event",
			zap.String("entity", entity),
			zap.String("event_type", eventType),
			zap.String("external_id", externalID),
			zap.Error(err))
		return err
	}
	return nil
}

// Close closes the underlying producer
func (p *KafkaPublisher) Close() {
	p.producer.Close()
}

// NopPublisher discards all events. Used when Kafka is disabled and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, entity, eventType, externalID string) error {
	return nil
}

func (NopPublisher) Close() {}
