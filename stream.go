package es

import (
	"context"
	"iter"
)

// StreamSlice is one page of a stream read.
type StreamSlice struct {
	// Events of the page, ordered by the direction of the read.
	Events []StoredEvent
	// StreamVersion is the current version of the stream at read time.
	StreamVersion int64
	// HasMore reports whether events remain beyond this page.
	HasMore bool
	// NextVersion is the cursor to resume from when HasMore is true.
	NextVersion int64
}

// IterateStream returns a sequence of all events in the stream with
// Version > fromVersion, paging through ReadStreamForward.
// The sequence stops and yields the error if a page read fails.
func IterateStream(ctx context.Context, store Store, streamID string, fromVersion int64) iter.Seq2[StoredEvent, error] {
	return func(yield func(StoredEvent, error) bool) {
		next := fromVersion
		for {
			slice, err := store.ReadStreamForward(ctx, streamID, next, DefaultReadLimit)
			if err != nil {
				yield(StoredEvent{}, err)
				return
			}

			for _, event := range slice.Events {
				if !yield(event, nil) {
					return
				}
			}

			if !slice.HasMore {
				return
			}

			next = slice.NextVersion
		}
	}
}
