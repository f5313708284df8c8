package models

import (
	"bytes"
	"fmt"
	"time"
)

// Timestamp accepts both RFC 3339 and the naive ISO-8601 form the backend
// emits for UTC columns ("2025-03-01T10:04:05.123456", no offset).
// Naive values are read as UTC. It always marshals as RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp: expected a JSON string, got %s", data)
	}
	raw := string(data[1 : len(data)-1])
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("timestamp: unrecognised format %q", raw)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.Time.Format(time.RFC3339Nano) + `"`), nil
}
