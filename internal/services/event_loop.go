package services

import (
	"context"

	"tcr/internal/domain"
	"tcr/internal/logging"
)

// EventHandler handles a single change event
type EventHandler interface {
	HandleEvent(ctx context.Context, event domain.ChangeEvent) error
}

// EventLoop feeds events to a handler one at a time, in arrival order
type EventLoop struct {
	escalations int
	handled     int
	handler     EventHandler
}

// NewEventLoop creates a new EventLoop
func NewEventLoop(handler EventHandler) *EventLoop {
	return &EventLoop{handler: handler}
}

// Run consumes events until ctx is cancelled or events is closed.
// A handler error is logged and the loop keeps watching.
func (l *EventLoop) Run(ctx context.Context, events <-chan domain.ChangeEvent) error {
	logging.Logger.Info("Event loop started")
	defer logging.Logger.Info("Event loop stopped", "handled", l.handled, "escalations", l.escalations)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			l.handled++
			if err := l.handler.HandleEvent(ctx, event); err != nil {
				l.escalations++
				logging.Logger.Error("Failed to handle event", "paths", event.Paths, "error", err)
			}
		}
	}
}

// Handled returns the number of events received so far
func (l *EventLoop) Handled() int { return l.handled }

// Escalations returns the number of events whose handling returned an error
func (l *EventLoop) Escalations() int { return l.escalations }
