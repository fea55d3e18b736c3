// Package pubsub fans typed events out to in-process subscribers. pgtail
// publishes highlighting configuration changes and debug log entries on it.
package pubsub

import (
	"context"
	"time"
)

// EventType says what happened.
type EventType string

const (
	ChangedEvent EventType = "changed" // highlighting configuration changed
	LoggedEvent  EventType = "logged"  // a debug log entry was written
)

// Event is one published payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out event subscriptions that end with ctx.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}
