package ports

import (
	"context"

	"tcr/internal/domain"
)

// EventSource produces normalized change events
type EventSource interface {
	// Watch blocks until ctx is cancelled or the source fails, sending events in arrival order
	Watch(ctx context.Context, events chan<- domain.ChangeEvent) error
}
