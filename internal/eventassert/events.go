package eventassert

import (
	"testing"

	es "github.com/elgendymo/Sakinah-sub008"
	"github.com/elgendymo/Sakinah-sub008/internal/assert"
)

func EqualEvent(t *testing.T, expected, actual es.StoredEvent) bool {
	t.Helper()
	equal := []bool{
		assert.Equalf(t, expected.StreamID, actual.StreamID, "StreamID not equal"),
		assert.Equalf(t, expected.AggregateType, actual.AggregateType, "AggregateType not equal"),
		assert.Equalf(t, expected.EventType, actual.EventType, "EventType not equal"),
		assert.Equalf(t, expected.Version, actual.Version, "Version not equal"),
		assert.DeepEqual(t, expected.Payload, actual.Payload),
	}
	for _, eq := range equal {
		if !eq {
			return false
		}
	}

	return true
}

// EqualStream asserts the events form one gapless stream: versions are
// exactly 1..N in order and every event carries the stream id.
func EqualStream(t *testing.T, streamID string, events []es.StoredEvent) bool {
	t.Helper()
	ok := true
	for i, event := range events {
		ok = assert.Equalf(t, streamID, event.StreamID, "StreamID of event %d", i) && ok
		ok = assert.Equalf(t, int64(i+1), event.Version, "Version of event %d", i) && ok
	}

	return ok
}
