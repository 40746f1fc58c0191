package events

import (
	"context"
	"log"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

// NoopPublisher drops events and logs them. Used when event publishing is
// disabled or the broker is unreachable at startup, so the pipeline keeps
// working without a broker.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards events.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(_ context.Context, event domain.RatingEvent) error {
	log.Printf("events.NoopPublisher: dropping %s event for rut %s folio %s",
		event.Action, event.RUT, event.Folio)
	return nil
}

func (p *NoopPublisher) Close() error { return nil }

var _ port.EventPublisher = (*NoopPublisher)(nil)
