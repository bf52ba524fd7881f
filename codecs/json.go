package codecs

import (
	"encoding/json"
	"fmt"

	es "github.com/elgendymo/Sakinah-sub008"
)

func NewJSON() *JSON {
	return &JSON{}
}

// JSON round-trips the opaque parts of a StoredEvent between the domain
// shape and the bytes a storage backend persists.
type JSON struct{}

func (j *JSON) EncodePayload(payload map[string]any) ([]byte, error) {
	if payload == nil {
		payload = map[string]any{}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("codecs: encode payload: %w", err)
	}

	return b, nil
}

func (j *JSON) DecodePayload(b []byte) (map[string]any, error) {
	var payload map[string]any
	err := json.Unmarshal(b, &payload)
	if err != nil {
		return nil, fmt.Errorf("codecs: decode payload: %w", err)
	}

	return payload, nil
}

func (j *JSON) EncodeMetadata(metadata es.Metadata) ([]byte, error) {
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("codecs: encode metadata: %w", err)
	}

	return b, nil
}

func (j *JSON) DecodeMetadata(b []byte) (es.Metadata, error) {
	var metadata es.Metadata
	err := json.Unmarshal(b, &metadata)
	if err != nil {
		return es.Metadata{}, fmt.Errorf("codecs: decode metadata: %w", err)
	}

	return metadata, nil
}
