package services

import (
	"time"

	"questify/internal/logger"
	"questify/pkg/rabbitmq"

	"github.com/google/uuid"
)

// EventPublisher is the subset of the RabbitMQ client the services
// need. A nil publisher disables event publishing entirely.
type EventPublisher interface {
	PublishEvent(event rabbitmq.Event) error
}

// publishCompletion emits a completion event. Publishing is
// fire-and-forget: a broker failure is logged but never surfaced to the
// request that triggered it.
func publishCompletion(events EventPublisher, log *logger.Logger, eventType string, userID, entityID uint) {
	if events == nil {
		return
	}
	event := rabbitmq.Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		OccurredAt: time.Now(),
	}
	if err := events.PublishEvent(event); err != nil {
		log.Warn().Err(err).Str("type", eventType).Uint("entity_id", entityID).Msg("failed to publish completion event")
		return
	}
	log.Debug().Str("type", eventType).Uint("entity_id", entityID).Msg("completion event published")
}
