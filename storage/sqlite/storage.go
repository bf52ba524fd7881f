// Package sqlite is the durable, file-backed Store engine.
//
// Events, snapshots and subscriber checkpoints live in one SQLite database.
// The (stream_id, version) unique index is what makes optimistic concurrency
// checking correct rather than racy: a racing append that slips past the
// in-transaction version read fails on the index and surfaces as a version
// conflict.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	es "github.com/elgendymo/Sakinah-sub008"
	"github.com/elgendymo/Sakinah-sub008/codecs"
	"github.com/elgendymo/Sakinah-sub008/internal/logger"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	position       INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id       TEXT    NOT NULL UNIQUE,
	stream_id      TEXT    NOT NULL,
	aggregate_type TEXT    NOT NULL,
	event_type     TEXT    NOT NULL,
	version        INTEGER NOT NULL,
	user_id        TEXT    NOT NULL DEFAULT '',
	payload        BLOB    NOT NULL,
	metadata       BLOB    NOT NULL,
	occurred_at    INTEGER NOT NULL,
	recorded_at    INTEGER NOT NULL,
	UNIQUE (stream_id, version)
);
CREATE INDEX IF NOT EXISTS idx_events_type_occurred ON events (event_type, occurred_at);
CREATE INDEX IF NOT EXISTS idx_events_user_occurred ON events (user_id, occurred_at);

CREATE TABLE IF NOT EXISTS snapshots (
	aggregate_id   TEXT    PRIMARY KEY,
	aggregate_type TEXT    NOT NULL,
	data           BLOB    NOT NULL,
	version        INTEGER NOT NULL,
	created_at     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS checkpoints (
	subscriber_id TEXT    PRIMARY KEY,
	position      INTEGER NOT NULL,
	updated_at    INTEGER NOT NULL
);
`

type Option func(*config)

type config struct {
	logger es.Logger
}

func WithLogger(log es.Logger) Option {
	return func(cfg *config) {
		cfg.logger = log
	}
}

// Open boots the engine at the given database file path, creating the file
// and the schema as needed.
func Open(path string, opts ...Option) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}

	cfg := config{logger: logger.Noop{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return &Storage{
		db:    db,
		codec: codecs.NewJSON(),
		log:   cfg.logger,
	}, nil
}

var _ es.Store = (*Storage)(nil)

type Storage struct {
	db    *sql.DB
	codec *codecs.JSON
	log   es.Logger

	// appendMux serializes the read-version-then-insert sequence between
	// in-process writers. Cross-process writers are caught by the
	// (stream_id, version) unique index.
	appendMux sync.Mutex
}

func (s *Storage) AppendToStream(ctx context.Context, streamID string, events []es.DomainEvent, opts ...es.AppendOption) ([]es.StoredEvent, error) {
	if len(events) == 0 {
		return nil, es.ErrNoEvents
	}

	options := es.NewAppendOptions(opts...)

	s.appendMux.Lock()
	defer s.appendMux.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: begin append tx: %w", err)
	}
	defer tx.Rollback()

	current, err := s.streamVersion(ctx, tx, streamID)
	if err != nil {
		return nil, err
	}

	if options.ExpectedVersion != nil && *options.ExpectedVersion != current {
		conflict := &es.VersionConflictError{
			StreamID: streamID,
			Expected: *options.ExpectedVersion,
			Actual:   current,
		}
		s.log.ErrorfCtx(ctx, "sqlite: %s", conflict)
		return nil, conflict
	}

	var (
		recordedAt = time.Now().UTC().Truncate(time.Millisecond)
		stored     = make([]es.StoredEvent, 0, len(events))
	)
	for i, event := range events {
		e := es.NewStoredEvent(event, streamID, current+int64(i)+1, options.ExtraMetadata, recordedAt)

		payload, err := s.codec.EncodePayload(e.Payload)
		if err != nil {
			return nil, err
		}

		metadata, err := s.codec.EncodeMetadata(e.Metadata)
		if err != nil {
			return nil, err
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO events (
				event_id, stream_id, aggregate_type, event_type, version,
				user_id, payload, metadata, occurred_at, recorded_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID,
			e.StreamID,
			e.AggregateType,
			e.EventType,
			e.Version,
			e.Metadata.UserID,
			payload,
			metadata,
			e.OccurredAt.UnixMilli(),
			e.RecordedAt.UnixMilli(),
		)
		if err != nil {
			if isConstraintError(err) {
				return nil, s.conflict(ctx, streamID, options.ExpectedVersion, current)
			}
			return nil, fmt.Errorf("sqlite: append version %d to stream %q: %w", e.Version, streamID, err)
		}

		position, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("sqlite: read position of appended event: %w", err)
		}
		e.GlobalPosition = position

		stored = append(stored, e)
	}

	if err := tx.Commit(); err != nil {
		if isConstraintError(err) {
			return nil, s.conflict(ctx, streamID, options.ExpectedVersion, current)
		}
		return nil, fmt.Errorf("sqlite: commit append to stream %q: %w", streamID, err)
	}

	return stored, nil
}

// conflict builds the version conflict for an append that lost the race to
// the unique index, re-reading the actual version outside the aborted tx.
func (s *Storage) conflict(ctx context.Context, streamID string, expected *int64, fallback int64) error {
	actual := fallback
	if version, err := s.streamVersion(ctx, s.db, streamID); err == nil {
		actual = version
	}

	exp := int64(-1)
	if expected != nil {
		exp = *expected
	}

	conflict := &es.VersionConflictError{StreamID: streamID, Expected: exp, Actual: actual}
	s.log.ErrorfCtx(ctx, "sqlite: %s", conflict)
	return conflict
}

func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
