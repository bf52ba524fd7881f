package es

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultReadLimit is the page size used when a read is called with a
// non-positive maxCount.
const DefaultReadLimit = 100

//go:generate go tool moq -rm -out store_mock_test.go -pkg es_test . Store

// Store is a durable, ordered, append-only log of events grouped into named
// streams, plus point-in-time snapshots and subscriber checkpoint
// bookkeeping.
//
// Versions within a stream start at 1 and are gapless. Appends are atomic:
// either every event of the call is durably recorded or none are. Reading a
// stream that was never written to yields empty results, not errors.
type Store interface {
	// AppendToStream writes the events to the stream, assigning consecutive
	// versions starting at the current stream version + 1.
	// The write is all-or-nothing. With WithExpectedVersion the call fails
	// with a *VersionConflictError unless the stream is exactly at that
	// version. ErrNoEvents is returned on an empty event list.
	// The durable form of the events is returned in write order.
	AppendToStream(ctx context.Context, streamID string, events []DomainEvent, opts ...AppendOption) ([]StoredEvent, error)
	// ReadStreamForward returns events with Version > fromVersion in
	// ascending order, capped at maxCount.
	ReadStreamForward(ctx context.Context, streamID string, fromVersion int64, maxCount int) (StreamSlice, error)
	// ReadStreamBackward returns events with Version <= fromVersion in
	// descending order, capped at maxCount. A fromVersion <= 0 starts at the
	// current stream version.
	ReadStreamBackward(ctx context.Context, streamID string, fromVersion int64, maxCount int) (StreamSlice, error)
	// ReadAllEvents returns events with GlobalPosition > fromPosition in
	// physical write order, capped at maxCount.
	ReadAllEvents(ctx context.Context, fromPosition int64, maxCount int) ([]StoredEvent, error)
	// ReadEventsByType returns events of the given type ordered by
	// OccurredAt ascending. Zero from/to times leave that bound open.
	ReadEventsByType(ctx context.Context, eventType string, from, to time.Time) ([]StoredEvent, error)
	// ReadEventsByUserID returns events attributed to the user ordered by
	// OccurredAt ascending. Zero from/to times leave that bound open.
	ReadEventsByUserID(ctx context.Context, userID string, from, to time.Time) ([]StoredEvent, error)
	// StreamVersion returns the current version of the stream, 0 if the
	// stream does not exist.
	StreamVersion(ctx context.Context, streamID string) (int64, error)
	// StreamExists reports whether the stream has at least one event.
	StreamExists(ctx context.Context, streamID string) (bool, error)
	// SaveSnapshot upserts the snapshot for the aggregate. At most one
	// snapshot is retained per aggregate, latest wins.
	SaveSnapshot(ctx context.Context, aggregateID string, data json.RawMessage, version int64) error
	// LatestSnapshot returns the snapshot for the aggregate, nil if none
	// was ever saved.
	LatestSnapshot(ctx context.Context, aggregateID string) (*Snapshot, error)
	// SaveCheckpoint upserts the resume position for a subscriber reading
	// the global feed.
	SaveCheckpoint(ctx context.Context, subscriberID string, position int64) error
	// Checkpoint returns the saved position for the subscriber, 0 if none
	// was ever saved.
	Checkpoint(ctx context.Context, subscriberID string) (int64, error)
	// Health returns a diagnostic summary of the store. No side effects.
	Health(ctx context.Context) (HealthStatus, error)
	// Close releases the resources held by the store.
	Close() error
}

// Snapshot is a compacted materialization of an aggregate at a known version.
type Snapshot struct {
	AggregateID   string
	AggregateType string
	// Data is the opaque serialized aggregate state.
	Data json.RawMessage
	// Version is the stream version the snapshot reflects.
	Version   int64
	CreatedAt time.Time
}

// HealthStatus is a diagnostic summary of a Store.
type HealthStatus struct {
	Healthy     bool
	EventCount  int64
	StreamCount int64
	// OldestEvent and NewestEvent are the recording times of the first and
	// last event in the store. Zero when the store is empty.
	OldestEvent time.Time
	NewestEvent time.Time
	CheckedAt   time.Time
}

// AppendOptions are resolved by storage backends through NewAppendOptions.
type AppendOptions struct {
	// ExpectedVersion guards the append. Nil appends to the end
	// unconditionally.
	ExpectedVersion *int64
	// ExtraMetadata is merged into the Metadata.Extra of every event of the
	// call.
	ExtraMetadata map[string]string
}

type AppendOption func(*AppendOptions)

// WithExpectedVersion makes the append fail with a *VersionConflictError
// unless the stream is exactly at the given version. Use 0 to require a
// stream that was never written to.
func WithExpectedVersion(version int64) AppendOption {
	return func(o *AppendOptions) {
		o.ExpectedVersion = &version
	}
}

// WithExtraMetadata attaches caller supplied metadata to every event of the
// append.
func WithExtraMetadata(extra map[string]string) AppendOption {
	return func(o *AppendOptions) {
		o.ExtraMetadata = extra
	}
}

// NewAppendOptions resolves the options of an AppendToStream call.
func NewAppendOptions(opts ...AppendOption) AppendOptions {
	var options AppendOptions
	for _, opt := range opts {
		opt(&options)
	}

	return options
}
