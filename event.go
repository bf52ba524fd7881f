package es

import (
	"time"

	"github.com/elgendymo/Sakinah-sub008/internal/uuid"
)

// DomainEvent is the application specific description of a state change.
// Producers construct DomainEvents and hand them to the Bus; the Store turns
// them into StoredEvents at write time.
//
// Every DomainEvent declares the aggregate it belongs to. The aggregate id
// doubles as the stream id, so one stream holds the full history of one
// aggregate instance.
type DomainEvent interface {
	// EventName is the specific name of the event, e.g. "HabitCompletedEvent".
	EventName() string
	// AggregateID identifies the aggregate instance the event belongs to.
	AggregateID() string
	// AggregateType is the coarse classification of the aggregate, e.g. "Habit".
	AggregateType() string
	// Payload is the business data of the event. It must be JSON serializable.
	Payload() map[string]any
	// OccurredAt is the logical time of the event, supplied by the producer.
	// A zero time is replaced with the write time by the Store.
	OccurredAt() time.Time
}

// UserAttributed is implemented by DomainEvents that carry the acting user.
type UserAttributed interface {
	UserID() string
}

// StoredEvent is an immutable fact once written.
// It is part of a Stream that makes up the current state of an aggregate.
type StoredEvent struct {
	// ID of the event, assigned by the Store at write time.
	// The ID is a UUIDv7 with the underlying time matching RecordedAt.
	ID string
	// StreamID is the ID of the stream the event belongs to.
	StreamID string
	// AggregateType is the type of the aggregate owning the stream.
	AggregateType string
	// EventType is the specific event name.
	EventType string
	// Version of the event in the stream. Starts at 1, strictly increasing,
	// no gaps.
	Version int64
	// GlobalPosition is the store-wide physical write order of the event.
	GlobalPosition int64
	// Payload is the business data of the event.
	Payload map[string]any
	// Metadata describes the circumstances of the event.
	Metadata Metadata
	// OccurredAt is the logical event time supplied by the producer.
	OccurredAt time.Time
	// RecordedAt is the wall-clock time of persistence, assigned by the Store.
	RecordedAt time.Time
}

// NewStoredEvent builds the durable form of a DomainEvent.
// It is used by storage backends at write time, where the version and the
// recording time are allocated.
func NewStoredEvent(event DomainEvent, streamID string, version int64, extra map[string]string, recordedAt time.Time) StoredEvent {
	occurredAt := event.OccurredAt()
	if occurredAt.IsZero() {
		occurredAt = recordedAt
	}

	var userID string
	if attributed, ok := event.(UserAttributed); ok {
		userID = attributed.UserID()
	}

	id := uuid.V7AtTime(recordedAt)

	return StoredEvent{
		ID:            id,
		StreamID:      streamID,
		AggregateType: event.AggregateType(),
		EventType:     event.EventName(),
		Version:       version,
		Payload:       event.Payload(),
		Metadata: Metadata{
			EventID:       id,
			AggregateID:   event.AggregateID(),
			AggregateType: event.AggregateType(),
			EventVersion:  version,
			OccurredAt:    occurredAt,
			UserID:        userID,
			Extra:         cloneExtra(extra),
		},
		OccurredAt: occurredAt,
		RecordedAt: recordedAt,
	}
}

func cloneExtra(extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return nil
	}

	out := make(map[string]string, len(extra))
	for k, v := range extra {
		out[k] = v
	}

	return out
}
