// Package eventbus carries domain events from services to interested
// subscribers. Services publish exactly one event per successful mutation,
// synchronously, after their local write has logically succeeded; delivery
// guarantees beyond that are the transport's concern.
package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/pkg/logger"
)

// Kind enumerates the mutation kinds an event can report.
type Kind string

const (
	Created Kind = "created"
	Updated Kind = "updated"
	Deleted Kind = "deleted"
)

// Event is the payload published for one entity mutation. Data carries the
// entity snapshot or mutation input that produced the event, so subscribers
// can react without a follow-up read.
type Event struct {
	Kind       Kind      `json:"kind"`
	Entity     string    `json:"entity"` // e.g. "tax_category"
	SubjectID  domain.ID `json:"subject_id"`
	Data       any       `json:"data,omitempty"`
	Locale     string    `json:"locale,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is the collaborator services publish through. Implementations
// must deliver synchronously within the Publish call; services treat a
// returned error as a delivery problem to log, never as a reason to fail the
// already-successful mutation.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Handler consumes events delivered by the in-memory Bus.
type Handler func(ctx context.Context, evt Event)

// Bus is an in-process Publisher fanning events out to subscribers in
// subscription order. Subscribe is expected at wiring time, but the bus is
// safe for concurrent Subscribe/Publish regardless.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewBus creates an empty in-memory event bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe registers a handler for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers evt to every subscriber, synchronously and in order. A
// panicking subscriber is isolated and logged so it cannot poison the
// publishing request.
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		deliver(ctx, h, evt)
	}
	return nil
}

func deliver(ctx context.Context, h Handler, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event handler panicked", "entity", evt.Entity, "kind", string(evt.Kind), "panic", r)
		}
	}()
	h(ctx, evt)
}
