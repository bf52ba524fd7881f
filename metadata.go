package es

import "time"

// Metadata describes the circumstances of a StoredEvent.
// It is assembled by the Store at write time from the DomainEvent and any
// caller supplied extras.
type Metadata struct {
	// EventID matches StoredEvent.ID.
	EventID string `json:"eventId"`
	// AggregateID is the id of the owning aggregate instance.
	AggregateID string `json:"aggregateId"`
	// AggregateType is the coarse classification of the aggregate.
	AggregateType string `json:"aggregateType"`
	// EventVersion matches StoredEvent.Version.
	EventVersion int64 `json:"eventVersion"`
	// OccurredAt is the logical event time.
	OccurredAt time.Time `json:"occurredAt"`
	// UserID is the acting user, if the event was attributed to one.
	UserID string `json:"userId,omitempty"`
	// Extra holds caller supplied metadata passed with the append.
	Extra map[string]string `json:"extra,omitempty"`
}
