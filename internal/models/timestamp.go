package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is UTC with exactly three fraction digits, e.g.
// "2024-03-09T10:30:00.120Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a creation time as written in the JSON documents.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to UTC at millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}
