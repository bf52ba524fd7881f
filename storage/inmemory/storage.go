// Package inmemory keeps the full Store contract in process memory.
// It is meant for tests and ephemeral use; durability is the sqlite
// backend's job.
package inmemory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	es "github.com/elgendymo/Sakinah-sub008"
	"github.com/elgendymo/Sakinah-sub008/codecs"
)

func New() *Storage {
	return &Storage{
		codec:       codecs.NewJSON(),
		streams:     make(map[string][]int),
		snapshots:   make(map[string]es.Snapshot),
		checkpoints: make(map[string]int64),
	}
}

var _ es.Store = (*Storage)(nil)

type Storage struct {
	mux   sync.RWMutex
	codec *codecs.JSON

	// table holds every event in physical write order. streams indexes it
	// per stream in version order; versions are gapless, so the row of
	// version v is streams[id][v-1].
	table       table
	streams     map[string][]int
	snapshots   map[string]es.Snapshot
	checkpoints map[string]int64
}

func (s *Storage) AppendToStream(ctx context.Context, streamID string, events []es.DomainEvent, opts ...es.AppendOption) ([]es.StoredEvent, error) {
	if len(events) == 0 {
		return nil, es.ErrNoEvents
	}

	options := es.NewAppendOptions(opts...)

	s.mux.Lock()
	defer s.mux.Unlock()

	current := int64(len(s.streams[streamID]))
	if options.ExpectedVersion != nil && *options.ExpectedVersion != current {
		return nil, &es.VersionConflictError{
			StreamID: streamID,
			Expected: *options.ExpectedVersion,
			Actual:   current,
		}
	}

	// Encode everything before touching the table so a bad event leaves
	// the stream untouched.
	var (
		recordedAt = time.Now().UTC()
		stored     = make([]es.StoredEvent, 0, len(events))
		rows       = make([]tableRow, 0, len(events))
	)
	for i, event := range events {
		e := es.NewStoredEvent(event, streamID, current+int64(i)+1, options.ExtraMetadata, recordedAt)
		e.GlobalPosition = int64(len(s.table)) + int64(i) + 1

		row, err := newRow(e, s.codec)
		if err != nil {
			return nil, err
		}

		stored = append(stored, e)
		rows = append(rows, row)
	}

	for _, row := range rows {
		s.table = append(s.table, row)
		s.streams[streamID] = append(s.streams[streamID], len(s.table)-1)
	}

	return stored, nil
}

func (s *Storage) ReadStreamForward(ctx context.Context, streamID string, fromVersion int64, maxCount int) (es.StreamSlice, error) {
	if maxCount <= 0 {
		maxCount = es.DefaultReadLimit
	}
	if fromVersion < 0 {
		fromVersion = 0
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	var (
		indexes = s.streams[streamID]
		current = int64(len(indexes))
		slice   = es.StreamSlice{StreamVersion: current}
	)

	start := fromVersion
	if start >= current {
		return slice, nil
	}

	end := min(start+int64(maxCount), current)
	for _, rowIndex := range indexes[start:end] {
		event, err := s.table[rowIndex].Event(s.codec)
		if err != nil {
			return es.StreamSlice{}, err
		}

		slice.Events = append(slice.Events, event)
	}

	slice.HasMore = end < current
	if slice.HasMore {
		slice.NextVersion = end
	}

	return slice, nil
}

func (s *Storage) ReadStreamBackward(ctx context.Context, streamID string, fromVersion int64, maxCount int) (es.StreamSlice, error) {
	if maxCount <= 0 {
		maxCount = es.DefaultReadLimit
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	var (
		indexes = s.streams[streamID]
		current = int64(len(indexes))
		slice   = es.StreamSlice{StreamVersion: current}
	)

	from := fromVersion
	if from <= 0 || from > current {
		from = current
	}

	for version := from; version > 0 && len(slice.Events) < maxCount; version-- {
		event, err := s.table[indexes[version-1]].Event(s.codec)
		if err != nil {
			return es.StreamSlice{}, err
		}

		slice.Events = append(slice.Events, event)
	}

	if n := len(slice.Events); n > 0 {
		next := slice.Events[n-1].Version - 1
		if next >= 1 {
			slice.HasMore = true
			slice.NextVersion = next
		}
	}

	return slice, nil
}

func (s *Storage) ReadAllEvents(ctx context.Context, fromPosition int64, maxCount int) ([]es.StoredEvent, error) {
	if maxCount <= 0 {
		maxCount = es.DefaultReadLimit
	}
	if fromPosition < 0 {
		fromPosition = 0
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	var events []es.StoredEvent
	for i := fromPosition; i < int64(len(s.table)) && len(events) < maxCount; i++ {
		event, err := s.table[i].Event(s.codec)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}

func (s *Storage) ReadEventsByType(ctx context.Context, eventType string, from, to time.Time) ([]es.StoredEvent, error) {
	return s.readFiltered(func(row tableRow) bool { return row.EventType == eventType }, from, to)
}

func (s *Storage) ReadEventsByUserID(ctx context.Context, userID string, from, to time.Time) ([]es.StoredEvent, error) {
	return s.readFiltered(func(row tableRow) bool { return row.UserID == userID }, from, to)
}

func (s *Storage) readFiltered(match func(tableRow) bool, from, to time.Time) ([]es.StoredEvent, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	var events []es.StoredEvent
	for _, row := range s.table {
		if !match(row) {
			continue
		}
		if !from.IsZero() && row.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && row.OccurredAt.After(to) {
			continue
		}

		event, err := row.Event(s.codec)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt.Before(events[j].OccurredAt)
	})

	return events, nil
}

func (s *Storage) StreamVersion(ctx context.Context, streamID string) (int64, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return int64(len(s.streams[streamID])), nil
}

func (s *Storage) StreamExists(ctx context.Context, streamID string) (bool, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return len(s.streams[streamID]) > 0, nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, aggregateID string, data json.RawMessage, version int64) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	var aggregateType string
	if indexes := s.streams[aggregateID]; len(indexes) > 0 {
		aggregateType = s.table[indexes[len(indexes)-1]].AggregateType
	}

	s.snapshots[aggregateID] = es.Snapshot{
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		Data:          append(json.RawMessage(nil), data...),
		Version:       version,
		CreatedAt:     time.Now().UTC(),
	}

	return nil
}

func (s *Storage) LatestSnapshot(ctx context.Context, aggregateID string) (*es.Snapshot, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	snapshot, ok := s.snapshots[aggregateID]
	if !ok {
		return nil, nil
	}

	return &snapshot, nil
}

func (s *Storage) SaveCheckpoint(ctx context.Context, subscriberID string, position int64) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.checkpoints[subscriberID] = position

	return nil
}

func (s *Storage) Checkpoint(ctx context.Context, subscriberID string) (int64, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return s.checkpoints[subscriberID], nil
}

func (s *Storage) Health(ctx context.Context) (es.HealthStatus, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	status := es.HealthStatus{
		Healthy:     true,
		EventCount:  int64(len(s.table)),
		StreamCount: int64(len(s.streams)),
		CheckedAt:   time.Now().UTC(),
	}

	if len(s.table) > 0 {
		status.OldestEvent = s.table[0].RecordedAt
		status.NewestEvent = s.table[len(s.table)-1].RecordedAt
	}

	return status, nil
}

func (s *Storage) Close() error {
	return nil
}
