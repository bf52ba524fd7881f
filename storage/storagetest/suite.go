package storagetest

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	es "github.com/elgendymo/Sakinah-sub008"
	"github.com/elgendymo/Sakinah-sub008/internal/assert"
	"github.com/elgendymo/Sakinah-sub008/internal/eventassert"
	"github.com/elgendymo/Sakinah-sub008/internal/uuid"
)

// Run exercises the full Store contract against a fresh backend per test.
func Run(t *testing.T, newStore func(t *testing.T) es.Store) {
	var (
		ctx       = context.Background()
		newStream = func() string { return "habit-" + uuid.V7() }
		newEvents = func(habitID string, count int) []es.DomainEvent {
			var events []es.DomainEvent
			for i := range count {
				events = append(events, HabitEvent{
					Name:    "HabitCompletedEvent",
					HabitID: habitID,
					Data:    map[string]any{"habitId": habitID, "day": float64(i + 1)},
				})
			}
			return events
		}
	)

	t.Run("assign gapless versions across appends", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		// act
		for _, batch := range [][]es.DomainEvent{
			newEvents(streamID, 2),
			newEvents(streamID, 1),
			newEvents(streamID, 3),
		} {
			_, err := sut.AppendToStream(ctx, streamID, batch)
			assert.NoError(t, err)
		}

		// assert
		slice, err := sut.ReadStreamForward(ctx, streamID, 0, 10)
		assert.NoError(t, err)
		assert.Equal(t, 6, len(slice.Events))
		assert.Equal(t, int64(6), slice.StreamVersion)
		eventassert.EqualStream(t, streamID, slice.Events)
	})

	t.Run("return stored events in write order", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		// act
		stored, err := sut.AppendToStream(ctx, streamID, []es.DomainEvent{
			Created(streamID),
			Completed(streamID),
		})

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 2, len(stored))
		assert.Equal(t, "HabitCreatedEvent", stored[0].EventType)
		assert.Equal(t, "HabitCompletedEvent", stored[1].EventType)
		assert.Equal(t, "Habit", stored[0].AggregateType)
		eventassert.EqualStream(t, streamID, stored)
		assert.NotZero(t, stored[0].ID)
		assert.NotZero(t, stored[0].Metadata.EventID)
	})

	t.Run("reject an empty append", func(t *testing.T) {
		// arrange
		var sut = newStore(t)
		defer sut.Close()

		// act
		_, err := sut.AppendToStream(ctx, newStream(), nil)

		// assert
		assert.Equal(t, es.ErrNoEvents, err)
	})

	t.Run("reject a stale expected version and leave the stream unchanged", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamID, newEvents(streamID, 5))
		assert.NoError(t, err)

		// act
		_, err = sut.AppendToStream(ctx, streamID, newEvents(streamID, 1), es.WithExpectedVersion(4))

		// assert
		assert.Truef(t, es.IsVersionConflict(err), "expected a version conflict, got %v", err)
		version, err := sut.StreamVersion(ctx, streamID)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), version)
	})

	t.Run("accept a matching expected version", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamID, newEvents(streamID, 2), es.WithExpectedVersion(0))
		assert.NoError(t, err)

		// act
		_, err = sut.AppendToStream(ctx, streamID, newEvents(streamID, 1), es.WithExpectedVersion(2))

		// assert
		assert.NoError(t, err)
	})

	t.Run("apply a multi event append all or nothing", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
			events   = []es.DomainEvent{
				Created(streamID),
				Completed(streamID),
				HabitEvent{
					Name:    "HabitBrokenEvent",
					HabitID: streamID,
					// channels do not serialize, the write must fail
					Data: map[string]any{"ch": make(chan int)},
				},
			}
		)
		defer sut.Close()

		// act
		_, err := sut.AppendToStream(ctx, streamID, events)

		// assert
		assert.Error(t, err)
		version, verr := sut.StreamVersion(ctx, streamID)
		assert.NoError(t, verr)
		assert.Equal(t, int64(0), version)
		exists, eerr := sut.StreamExists(ctx, streamID)
		assert.NoError(t, eerr)
		assert.Equal(t, false, exists)
	})

	t.Run("serialize concurrent unconditional appends", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
			wg       sync.WaitGroup
		)
		defer sut.Close()

		// act
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := sut.AppendToStream(ctx, streamID, newEvents(streamID, 5))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// assert
		slice, err := sut.ReadStreamForward(ctx, streamID, 0, 100)
		assert.NoError(t, err)
		assert.Equal(t, 20, len(slice.Events))
		eventassert.EqualStream(t, streamID, slice.Events)
	})

	t.Run("read pages that compose to the full stream", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamID, newEvents(streamID, 4))
		assert.NoError(t, err)

		whole, err := sut.ReadStreamForward(ctx, streamID, 0, 4)
		assert.NoError(t, err)
		assert.Equal(t, false, whole.HasMore)

		// act
		first, err := sut.ReadStreamForward(ctx, streamID, 0, 2)
		assert.NoError(t, err)
		assert.Equal(t, true, first.HasMore)
		second, err := sut.ReadStreamForward(ctx, streamID, first.NextVersion, 2)
		assert.NoError(t, err)

		// assert
		paged := append(append([]es.StoredEvent{}, first.Events...), second.Events...)
		assert.EqualSliceFunc(t, whole.Events, paged, func(want, item es.StoredEvent) bool {
			return eventassert.EqualEvent(t, want, item)
		})
	})

	t.Run("read a missing stream as empty", func(t *testing.T) {
		// arrange
		var sut = newStore(t)
		defer sut.Close()

		// act
		slice, err := sut.ReadStreamForward(ctx, newStream(), 0, 10)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 0, len(slice.Events))
		assert.Equal(t, int64(0), slice.StreamVersion)
		assert.Equal(t, false, slice.HasMore)
	})

	t.Run("read backward from the head by default", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamID, newEvents(streamID, 5))
		assert.NoError(t, err)

		// act
		slice, err := sut.ReadStreamBackward(ctx, streamID, 0, 3)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 3, len(slice.Events))
		assert.Equal(t, int64(5), slice.Events[0].Version)
		assert.Equal(t, int64(3), slice.Events[2].Version)
		assert.Equal(t, true, slice.HasMore)
		assert.Equal(t, int64(2), slice.NextVersion)

		// act
		rest, err := sut.ReadStreamBackward(ctx, streamID, slice.NextVersion, 3)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 2, len(rest.Events))
		assert.Equal(t, int64(2), rest.Events[0].Version)
		assert.Equal(t, int64(1), rest.Events[1].Version)
		assert.Equal(t, false, rest.HasMore)
	})

	t.Run("read the global feed in physical write order", func(t *testing.T) {
		// arrange
		var (
			sut     = newStore(t)
			streamA = newStream()
			streamB = newStream()
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamA, newEvents(streamA, 2))
		assert.NoError(t, err)
		_, err = sut.AppendToStream(ctx, streamB, newEvents(streamB, 1))
		assert.NoError(t, err)
		_, err = sut.AppendToStream(ctx, streamA, newEvents(streamA, 1))
		assert.NoError(t, err)

		// act
		all, err := sut.ReadAllEvents(ctx, 0, 10)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 4, len(all))
		assert.EqualSlice(t, []string{streamA, streamA, streamB, streamA}, []string{
			all[0].StreamID, all[1].StreamID, all[2].StreamID, all[3].StreamID,
		})
		for i := 1; i < len(all); i++ {
			assert.Truef(t, all[i].GlobalPosition > all[i-1].GlobalPosition, "positions not increasing at %d", i)
		}

		// act
		tail, err := sut.ReadAllEvents(ctx, all[1].GlobalPosition, 10)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 2, len(tail))
	})

	t.Run("filter events by type and time window", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
			now      = time.Now().UTC().Truncate(time.Second)
			events   = []es.DomainEvent{
				HabitEvent{Name: "HabitCreatedEvent", HabitID: streamID, At: now.Add(-2 * time.Hour)},
				HabitEvent{Name: "HabitCompletedEvent", HabitID: streamID, At: now.Add(-1 * time.Hour)},
				HabitEvent{Name: "HabitCompletedEvent", HabitID: streamID, At: now},
			}
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamID, events)
		assert.NoError(t, err)

		// act
		got, err := sut.ReadEventsByType(ctx, "HabitCompletedEvent", time.Time{}, time.Time{})

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 2, len(got))

		// act
		got, err = sut.ReadEventsByType(ctx, "HabitCompletedEvent", now.Add(-30*time.Minute), time.Time{})

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 1, len(got))
	})

	t.Run("filter events by user ordered by occurrence", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
			now      = time.Now().UTC().Truncate(time.Second)
			events   = []es.DomainEvent{
				HabitEvent{Name: "HabitCompletedEvent", HabitID: streamID, User: "user-1", At: now},
				HabitEvent{Name: "HabitCompletedEvent", HabitID: streamID, User: "user-2", At: now.Add(-time.Minute)},
				HabitEvent{Name: "HabitCompletedEvent", HabitID: streamID, User: "user-1", At: now.Add(-time.Hour)},
			}
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamID, events)
		assert.NoError(t, err)

		// act
		got, err := sut.ReadEventsByUserID(ctx, "user-1", time.Time{}, time.Time{})

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 2, len(got))
		assert.Truef(t, !got[0].OccurredAt.After(got[1].OccurredAt), "not ordered by occurredAt")
		assert.Equal(t, "user-1", got[0].Metadata.UserID)
	})

	t.Run("attach extra metadata to every event of the call", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		// act
		_, err := sut.AppendToStream(ctx, streamID, newEvents(streamID, 2),
			es.WithExtraMetadata(map[string]string{"requestId": "req-7"}),
		)

		// assert
		assert.NoError(t, err)
		slice, err := sut.ReadStreamForward(ctx, streamID, 0, 10)
		assert.NoError(t, err)
		for _, event := range slice.Events {
			assert.Equal(t, "req-7", event.Metadata.Extra["requestId"])
		}
	})

	t.Run("replace the snapshot on save", func(t *testing.T) {
		// arrange
		var (
			sut      = newStore(t)
			streamID = newStream()
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamID, newEvents(streamID, 3))
		assert.NoError(t, err)

		assert.NoError(t, sut.SaveSnapshot(ctx, streamID, json.RawMessage(`{"streak":10}`), 10))

		// act
		err = sut.SaveSnapshot(ctx, streamID, json.RawMessage(`{"streak":20}`), 20)

		// assert
		assert.NoError(t, err)
		snapshot, err := sut.LatestSnapshot(ctx, streamID)
		assert.NoError(t, err)
		assert.NotNil(t, snapshot)
		assert.Equal(t, int64(20), snapshot.Version)
		assert.Equal(t, `{"streak":20}`, string(snapshot.Data))
		assert.Equal(t, "Habit", snapshot.AggregateType)
	})

	t.Run("return nil for a missing snapshot", func(t *testing.T) {
		// arrange
		var sut = newStore(t)
		defer sut.Close()

		// act
		snapshot, err := sut.LatestSnapshot(ctx, newStream())

		// assert
		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("round trip a subscriber checkpoint", func(t *testing.T) {
		// arrange
		var (
			sut          = newStore(t)
			subscriberID = "projector-" + uuid.V7()
		)
		defer sut.Close()

		position, err := sut.Checkpoint(ctx, subscriberID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), position)

		// act
		assert.NoError(t, sut.SaveCheckpoint(ctx, subscriberID, 42))
		assert.NoError(t, sut.SaveCheckpoint(ctx, subscriberID, 45))

		// assert
		position, err = sut.Checkpoint(ctx, subscriberID)
		assert.NoError(t, err)
		assert.Equal(t, int64(45), position)
	})

	t.Run("report counts in the health status", func(t *testing.T) {
		// arrange
		var (
			sut     = newStore(t)
			streamA = newStream()
			streamB = newStream()
		)
		defer sut.Close()

		_, err := sut.AppendToStream(ctx, streamA, newEvents(streamA, 2))
		assert.NoError(t, err)
		_, err = sut.AppendToStream(ctx, streamB, newEvents(streamB, 1))
		assert.NoError(t, err)

		// act
		status, err := sut.Health(ctx)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, true, status.Healthy)
		assert.Equal(t, int64(3), status.EventCount)
		assert.Equal(t, int64(2), status.StreamCount)
		assert.NotZero(t, status.OldestEvent)
		assert.NotZero(t, status.NewestEvent)
		assert.TimeWithinWindow(t, time.Now(), status.CheckedAt, time.Minute)
	})

	t.Run("record two habit events at versions 1 and 2", func(t *testing.T) {
		// arrange
		var sut = newStore(t)
		defer sut.Close()

		// act
		_, err := sut.AppendToStream(ctx, "habit-42", []es.DomainEvent{
			Created("habit-42"),
			Completed("habit-42"),
		})

		// assert
		assert.NoError(t, err)
		slice, err := sut.ReadStreamForward(ctx, "habit-42", 0, 10)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(slice.Events))
		assert.Equal(t, "HabitCreatedEvent", slice.Events[0].EventType)
		assert.Equal(t, int64(1), slice.Events[0].Version)
		assert.Equal(t, "HabitCompletedEvent", slice.Events[1].EventType)
		assert.Equal(t, int64(2), slice.Events[1].Version)
		version, err := sut.StreamVersion(ctx, "habit-42")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), version)
	})
}
