package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	es "github.com/elgendymo/Sakinah-sub008"
)

const eventColumns = `event_id, stream_id, aggregate_type, event_type, version, position, payload, metadata, occurred_at, recorded_at`

// querier is satisfied by *sql.DB and *sql.Tx, so reads that need a
// consistent view can run inside one transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanEvent(row rowScanner) (es.StoredEvent, error) {
	var (
		event                  es.StoredEvent
		payload, metadata      []byte
		occurredAt, recordedAt int64
	)

	err := row.Scan(
		&event.ID,
		&event.StreamID,
		&event.AggregateType,
		&event.EventType,
		&event.Version,
		&event.GlobalPosition,
		&payload,
		&metadata,
		&occurredAt,
		&recordedAt,
	)
	if err != nil {
		return es.StoredEvent{}, fmt.Errorf("sqlite: scan event row: %w", err)
	}

	event.Payload, err = s.codec.DecodePayload(payload)
	if err != nil {
		return es.StoredEvent{}, err
	}

	event.Metadata, err = s.codec.DecodeMetadata(metadata)
	if err != nil {
		return es.StoredEvent{}, err
	}

	event.OccurredAt = time.UnixMilli(occurredAt).UTC()
	event.RecordedAt = time.UnixMilli(recordedAt).UTC()

	return event, nil
}

func (s *Storage) queryEvents(ctx context.Context, q querier, query string, args ...any) ([]es.StoredEvent, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query events: %w", err)
	}
	defer rows.Close()

	var events []es.StoredEvent
	for rows.Next() {
		event, err := s.scanEvent(rows)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, rows.Err()
}

func (s *Storage) ReadStreamForward(ctx context.Context, streamID string, fromVersion int64, maxCount int) (es.StreamSlice, error) {
	if maxCount <= 0 {
		maxCount = es.DefaultReadLimit
	}
	if fromVersion < 0 {
		fromVersion = 0
	}

	// One read tx so the version and the page are a consistent view; an
	// append committing between two plain queries could make the page newer
	// than the reported stream version.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return es.StreamSlice{}, fmt.Errorf("sqlite: begin read tx: %w", err)
	}
	defer tx.Rollback()

	current, err := s.streamVersion(ctx, tx, streamID)
	if err != nil {
		return es.StreamSlice{}, err
	}

	events, err := s.queryEvents(ctx, tx, `
		SELECT `+eventColumns+` FROM events
		WHERE stream_id = ? AND version > ?
		ORDER BY version ASC LIMIT ?`,
		streamID, fromVersion, maxCount,
	)
	if err != nil {
		return es.StreamSlice{}, err
	}

	slice := es.StreamSlice{
		Events:        events,
		StreamVersion: current,
	}
	if n := len(events); n > 0 && events[n-1].Version < current {
		slice.HasMore = true
		slice.NextVersion = events[n-1].Version
	}

	return slice, nil
}

func (s *Storage) ReadStreamBackward(ctx context.Context, streamID string, fromVersion int64, maxCount int) (es.StreamSlice, error) {
	if maxCount <= 0 {
		maxCount = es.DefaultReadLimit
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return es.StreamSlice{}, fmt.Errorf("sqlite: begin read tx: %w", err)
	}
	defer tx.Rollback()

	current, err := s.streamVersion(ctx, tx, streamID)
	if err != nil {
		return es.StreamSlice{}, err
	}

	from := fromVersion
	if from <= 0 || from > current {
		from = current
	}

	events, err := s.queryEvents(ctx, tx, `
		SELECT `+eventColumns+` FROM events
		WHERE stream_id = ? AND version <= ?
		ORDER BY version DESC LIMIT ?`,
		streamID, from, maxCount,
	)
	if err != nil {
		return es.StreamSlice{}, err
	}

	slice := es.StreamSlice{
		Events:        events,
		StreamVersion: current,
	}
	if n := len(events); n > 0 {
		if next := events[n-1].Version - 1; next >= 1 {
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

	return s.queryEvents(ctx, s.db, `
		SELECT `+eventColumns+` FROM events
		WHERE position > ?
		ORDER BY position ASC LIMIT ?`,
		fromPosition, maxCount,
	)
}

func (s *Storage) ReadEventsByType(ctx context.Context, eventType string, from, to time.Time) ([]es.StoredEvent, error) {
	return s.readFiltered(ctx, "event_type", eventType, from, to)
}

func (s *Storage) ReadEventsByUserID(ctx context.Context, userID string, from, to time.Time) ([]es.StoredEvent, error) {
	return s.readFiltered(ctx, "user_id", userID, from, to)
}

func (s *Storage) readFiltered(ctx context.Context, column, value string, from, to time.Time) ([]es.StoredEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + column + ` = ?`
	args := []any{value}

	if !from.IsZero() {
		query += ` AND occurred_at >= ?`
		args = append(args, from.UnixMilli())
	}
	if !to.IsZero() {
		query += ` AND occurred_at <= ?`
		args = append(args, to.UnixMilli())
	}

	query += ` ORDER BY occurred_at ASC, position ASC`

	return s.queryEvents(ctx, s.db, query, args...)
}

func (s *Storage) StreamVersion(ctx context.Context, streamID string) (int64, error) {
	return s.streamVersion(ctx, s.db, streamID)
}

func (s *Storage) streamVersion(ctx context.Context, q querier, streamID string) (int64, error) {
	var version int64
	err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM events WHERE stream_id = ?`, streamID).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("sqlite: read version of stream %q: %w", streamID, err)
	}

	return version, nil
}

func (s *Storage) StreamExists(ctx context.Context, streamID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE stream_id = ?)`, streamID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sqlite: check stream %q: %w", streamID, err)
	}

	return exists, nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, aggregateID string, data json.RawMessage, version int64) error {
	var aggregateType string
	err := s.db.QueryRowContext(ctx, `
		SELECT aggregate_type FROM events
		WHERE stream_id = ? ORDER BY version DESC LIMIT 1`,
		aggregateID,
	).Scan(&aggregateType)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("sqlite: resolve aggregate type of %q: %w", aggregateID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (aggregate_id, aggregate_type, data, version, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (aggregate_id) DO UPDATE SET
			aggregate_type = excluded.aggregate_type,
			data = excluded.data,
			version = excluded.version,
			created_at = excluded.created_at`,
		aggregateID, aggregateType, []byte(data), version, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save snapshot for %q: %w", aggregateID, err)
	}

	return nil
}

func (s *Storage) LatestSnapshot(ctx context.Context, aggregateID string) (*es.Snapshot, error) {
	var (
		snapshot  = es.Snapshot{AggregateID: aggregateID}
		data      []byte
		createdAt int64
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT aggregate_type, data, version, created_at FROM snapshots
		WHERE aggregate_id = ?`,
		aggregateID,
	).Scan(&snapshot.AggregateType, &data, &snapshot.Version, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: read snapshot for %q: %w", aggregateID, err)
	}

	snapshot.Data = json.RawMessage(data)
	snapshot.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &snapshot, nil
}

func (s *Storage) SaveCheckpoint(ctx context.Context, subscriberID string, position int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO checkpoints (subscriber_id, position, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (subscriber_id) DO UPDATE SET
			position = excluded.position,
			updated_at = excluded.updated_at`,
		subscriberID, position, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save checkpoint for %q: %w", subscriberID, err)
	}

	return nil
}

func (s *Storage) Checkpoint(ctx context.Context, subscriberID string) (int64, error) {
	var position int64
	err := s.db.QueryRowContext(ctx, `SELECT position FROM checkpoints WHERE subscriber_id = ?`, subscriberID).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite: read checkpoint for %q: %w", subscriberID, err)
	}

	return position, nil
}

func (s *Storage) Health(ctx context.Context) (es.HealthStatus, error) {
	status := es.HealthStatus{CheckedAt: time.Now().UTC()}

	if err := s.db.PingContext(ctx); err != nil {
		return status, nil
	}

	var oldest, newest int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT stream_id), COALESCE(MIN(recorded_at), 0), COALESCE(MAX(recorded_at), 0)
		FROM events`,
	).Scan(&status.EventCount, &status.StreamCount, &oldest, &newest)
	if err != nil {
		return status, fmt.Errorf("sqlite: read health counters: %w", err)
	}

	status.Healthy = true
	if status.EventCount > 0 {
		status.OldestEvent = time.UnixMilli(oldest).UTC()
		status.NewestEvent = time.UnixMilli(newest).UTC()
	}

	return status, nil
}
