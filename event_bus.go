package es

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Bus coordinates durable persistence and in-process delivery.
//
// PublishEvents persists events through the Store before any handler sees
// them: a call that fails at the persist step never reaches dispatch.
// Dispatch fans out to all handlers of an event type concurrently and is
// isolated, so a failing handler is logged and never fails the publish call.
//
// The Bus is stateless aside from the handler registry, which is in-memory
// and process-lifetime: handlers must re-subscribe at startup.
type Bus struct {
	store Store
	cfg   *Config

	mux      sync.RWMutex
	handlers map[string][]*Subscription
}

// New creates a Bus on top of the given Store.
func New(store Store, opts ...Option) *Bus {
	return &Bus{
		store:    store,
		cfg:      applyOptions(defaultOptions(), opts...),
		handlers: make(map[string][]*Subscription),
	}
}

// Publish persists and dispatches a single event.
func (b *Bus) Publish(ctx context.Context, event DomainEvent) error {
	return b.PublishEvents(ctx, []DomainEvent{event})
}

// PublishEvents groups the events by aggregate id, appends each group
// atomically to its stream and, only after every group is durable,
// dispatches each event to the handlers subscribed to its type.
//
// The appends are unconditional. Callers that need conflict detection
// between concurrent producers of the same stream use the Store directly
// with WithExpectedVersion.
func (b *Bus) PublishEvents(ctx context.Context, events []DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	groups, order, err := groupByStream(events)
	if err != nil {
		b.cfg.logger.ErrorfCtx(ctx, "es/bus: rejecting publish: %s", err)
		return err
	}

	var persisted []StoredEvent
	for _, streamID := range order {
		stored, err := b.store.AppendToStream(ctx, streamID, groups[streamID])
		if err != nil {
			return fmt.Errorf("es/bus: persist events for stream %q: %w", streamID, err)
		}

		persisted = append(persisted, stored...)
	}

	b.dispatch(ctx, persisted)

	return nil
}

// groupByStream partitions events by aggregate id, keeping first-seen stream
// order and the event order within each stream.
func groupByStream(events []DomainEvent) (map[string][]DomainEvent, []string, error) {
	var (
		groups = make(map[string][]DomainEvent)
		order  []string
	)

	for _, event := range events {
		streamID := event.AggregateID()
		if streamID == "" {
			return nil, nil, fmt.Errorf("%w: event %q", ErrMissingAggregateID, event.EventName())
		}

		if _, ok := groups[streamID]; !ok {
			order = append(order, streamID)
		}
		groups[streamID] = append(groups[streamID], event)
	}

	return groups, order, nil
}

// dispatch delivers the persisted events to every matching Subscription,
// running deliveries concurrently and waiting for all of them. Handler
// errors are logged and contained.
func (b *Bus) dispatch(ctx context.Context, events []StoredEvent) {
	type delivery struct {
		event StoredEvent
		sub   *Subscription
	}

	b.mux.RLock()
	var deliveries []delivery
	for _, event := range events {
		for _, sub := range b.handlers[event.EventType] {
			deliveries = append(deliveries, delivery{event: event, sub: sub})
		}
	}
	b.mux.RUnlock()

	if len(deliveries) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(b.cfg.dispatchLimit)
	for _, d := range deliveries {
		g.Go(func() error {
			if err := d.sub.handler.Handle(ctx, d.event); err != nil {
				b.cfg.logger.ErrorfCtx(ctx, "es/bus: handler for %s on stream %s failed: %s", d.event.EventType, d.event.StreamID, err)
			}
			return nil
		})
	}

	_ = g.Wait()
}

// Subscribe registers the handler for all events of the given type.
// Subscribing the same handler twice results in two invocations per event;
// de-duplication is the caller's responsibility.
func (b *Bus) Subscribe(eventType string, handler Handler) *Subscription {
	sub := &Subscription{
		bus:       b,
		eventType: eventType,
		handler:   handler,
	}

	b.mux.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], sub)
	b.mux.Unlock()

	return sub
}

// RegisteredHandlers returns the number of subscriptions per event type.
func (b *Bus) RegisteredHandlers() map[string]int {
	b.mux.RLock()
	defer b.mux.RUnlock()

	out := make(map[string]int, len(b.handlers))
	for eventType, subs := range b.handlers {
		out[eventType] = len(subs)
	}

	return out
}

// Subscription is the handle to one handler registration on a Bus.
type Subscription struct {
	bus       *Bus
	eventType string
	handler   Handler
}

// Unsubscribe removes exactly this registration. It is safe to call during
// an in-flight dispatch and is a no-op when called twice.
func (s *Subscription) Unsubscribe() {
	b := s.bus

	b.mux.Lock()
	defer b.mux.Unlock()

	subs := b.handlers[s.eventType]
	for i, sub := range subs {
		if sub == s {
			b.handlers[s.eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}

	if len(b.handlers[s.eventType]) == 0 {
		delete(b.handlers, s.eventType)
	}
}
