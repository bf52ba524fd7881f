package es

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEvents is returned when AppendToStream is asked to write an
	// empty list of events.
	ErrNoEvents = errors.New("es: no events to append")
	// ErrMissingAggregateID is returned by the Bus when a DomainEvent does
	// not declare the aggregate it belongs to. There is no placeholder
	// stream; an event without an identity is a bug at the producer.
	ErrMissingAggregateID = errors.New("es: domain event has no aggregate id")
)

// VersionConflictError reports that an append guarded by an expected version
// found the stream at a different version. The caller is expected to re-read
// the stream and retry with a fresh expected version.
type VersionConflictError struct {
	StreamID string
	// Expected is the version the caller assumed, -1 for an unconditional
	// append that lost a race on version allocation.
	Expected int64
	// Actual is the stream version found at write time.
	Actual int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("es: version conflict on stream %q: expected %d, actual %d", e.StreamID, e.Expected, e.Actual)
}

// IsVersionConflict reports whether err is a *VersionConflictError.
func IsVersionConflict(err error) bool {
	var conflict *VersionConflictError
	return errors.As(err, &conflict)
}
