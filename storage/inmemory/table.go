package inmemory

import (
	"time"

	es "github.com/elgendymo/Sakinah-sub008"
	"github.com/elgendymo/Sakinah-sub008/codecs"
)

// tableRow is the durable form of one event. Payload and metadata are kept
// encoded so the backend round-trips events the same way a file-backed
// engine does.
type tableRow struct {
	EventID       string
	StreamID      string
	AggregateType string
	EventType     string
	Version       int64
	Position      int64
	UserID        string
	Payload       []byte
	Metadata      []byte
	OccurredAt    time.Time
	RecordedAt    time.Time
}

type table []tableRow

func newRow(event es.StoredEvent, c *codecs.JSON) (tableRow, error) {
	payload, err := c.EncodePayload(event.Payload)
	if err != nil {
		return tableRow{}, err
	}

	metadata, err := c.EncodeMetadata(event.Metadata)
	if err != nil {
		return tableRow{}, err
	}

	return tableRow{
		EventID:       event.ID,
		StreamID:      event.StreamID,
		AggregateType: event.AggregateType,
		EventType:     event.EventType,
		Version:       event.Version,
		Position:      event.GlobalPosition,
		UserID:        event.Metadata.UserID,
		Payload:       payload,
		Metadata:      metadata,
		OccurredAt:    event.OccurredAt,
		RecordedAt:    event.RecordedAt,
	}, nil
}

func (row tableRow) Event(c *codecs.JSON) (es.StoredEvent, error) {
	payload, err := c.DecodePayload(row.Payload)
	if err != nil {
		return es.StoredEvent{}, err
	}

	metadata, err := c.DecodeMetadata(row.Metadata)
	if err != nil {
		return es.StoredEvent{}, err
	}

	return es.StoredEvent{
		ID:             row.EventID,
		StreamID:       row.StreamID,
		AggregateType:  row.AggregateType,
		EventType:      row.EventType,
		Version:        row.Version,
		GlobalPosition: row.Position,
		Payload:        payload,
		Metadata:       metadata,
		OccurredAt:     row.OccurredAt,
		RecordedAt:     row.RecordedAt,
	}, nil
}
