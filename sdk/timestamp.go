package sdk

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// timestampLayouts are tried in order when reading a Timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a point in time as recorded by the upstream reservation
// service. The upstream does not enforce a format, so values that match none
// of the known layouts are kept as-is in Raw with a zero Time.
type Timestamp struct {
	Time time.Time
	Raw  string
}

// NewTimestamp returns a Timestamp for t.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// Parsed reports whether the Timestamp holds a usable Time.
func (t Timestamp) Parsed() bool {
	return !t.Time.IsZero()
}

// MarshalJSON writes back the value exactly as it was read. Timestamps
// constructed in code are written in RFC 3339 form.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw != "" {
		return json.Marshal(t.Raw)
	}
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts any JSON string or null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "timestamp must be a string")
	}
	*t = Timestamp{Raw: raw}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			break
		}
	}
	return nil
}
