package domain

import "time"

// TransformRecord is a persisted transform output keyed by its cache key.
type TransformRecord struct {
	Key        string    `json:"key,omitzero"`
	Filename   string    `json:"filename,omitzero"`
	Code       string    `json:"code,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
