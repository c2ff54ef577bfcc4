package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PublishTimeout bounds how long a request waits on one event write.
const PublishTimeout = 2 * time.Second

// EventPublisher publishes domain events about rooms and users.
type EventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(kafkaWriter KafkaWriter) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter}
}

// Publish sends an event keyed by entity id. Delivery is best effort:
// failures are logged and never fail the calling operation.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, entityID uuid.UUID, payload any) {
	if p == nil || p.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "entity_id", entityID)
		return
	}

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			logger.Log.Errorw("Failed to marshal event payload", "type", eventType, "entity_id", entityID, "error", err)
			return
		}
		raw = data
	}

	event := models.Event{
		EventID:    uuid.New(),
		Type:       eventType,
		EntityID:   entityID,
		Payload:    raw,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entityID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "entity_id", entityID)
	}
}
