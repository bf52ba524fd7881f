package es

import (
	"testing"
	"time"

	"github.com/elgendymo/Sakinah-sub008/internal/assert"
	"github.com/elgendymo/Sakinah-sub008/internal/uuid"
)

// ApplyState is a test helper meant to make it easy to hydrate a state using event data.
// The events are delivered to the state as one stream with versions 1..N.
func ApplyState[T Handler](t *testing.T, state T, events ...DomainEvent) T {
	t.Helper()
	if len(events) == 0 {
		return state
	}

	streamID := events[0].AggregateID()
	if streamID == "" {
		streamID = uuid.V7()
	}

	recordedAt := time.Now()
	for i, event := range events {
		err := state.Handle(t.Context(), NewStoredEvent(event, streamID, int64(i)+1, nil, recordedAt))
		assert.NoError(t, err)
	}

	return state
}
