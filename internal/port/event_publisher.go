package port

import (
	"context"

	"nuamx/internal/domain"
)

// EventPublisher emits rating domain events to downstream consumers.
// Publishing is best-effort: callers log failures and never roll back
// storage writes because of them.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.RatingEvent) error
	Close() error
}
