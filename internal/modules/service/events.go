package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tpdc055/connectpng/internal/infra/queue"
)

// Event is the payload pushed to the live-update exchange on entity changes.
type Event struct {
	Type       string      `json:"type"`
	EntityID   string      `json:"entity_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data,omitempty"`
}

// EventPublisher fans entity changes out to dashboard subscribers.
// Publishing is fire-and-forget: failures are logged and never fail the
// request that caused them.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, entityID string, data interface{})
}

type eventPublisher struct {
	pub *queue.Publisher
	log *zap.Logger
}

func NewEventPublisher(pub *queue.Publisher, log *zap.Logger) EventPublisher {
	return &eventPublisher{pub: pub, log: log}
}

func (p *eventPublisher) Publish(ctx context.Context, eventType, entityID string, data interface{}) {
	if p.pub == nil {
		return
	}

	ev := Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	if err := p.pub.PublishJSON(ctx, eventType, ev); err != nil {
		p.log.Warn("event publish failed",
			zap.String("event_type", eventType),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// NopEventPublisher discards events; used in tests and when the broker is
// not configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, string, string, interface{}) {}
