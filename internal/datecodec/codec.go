// Package datecodec encodes timestamps as ISO-8601 strings with millisecond
// precision, matching JavaScript's Date.toISOString().
package datecodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDateFormat is returned when a value matches none of the accepted layouts.
var ErrDateFormat = errors.New("invalid date format")

const (
	layoutMillis  = "2006-01-02T15:04:05.000Z07:00"
	layoutSeconds = "2006-01-02T15:04:05Z07:00"
)

// Codec formats and parses timestamps. Construct one with New and hand it to
// whichever component serializes dates.
type Codec struct {
	location *time.Location
}

// New creates a codec that emits UTC millisecond timestamps.
func New() *Codec {
	return &Codec{location: time.UTC}
}

// Format renders t as e.g. 2024-03-01T12:30:45.123Z.
func (c *Codec) Format(t time.Time) string {
	return t.In(c.location).Format(layoutMillis)
}

// Parse accepts a timestamp with exactly three fractional digits, falling
// back to one with no fractional seconds at all.
func (c *Codec) Parse(s string) (time.Time, error) {
	if t, err := time.Parse(layoutMillis, s); err == nil {
		return t.In(c.location), nil
	}
	// time.Parse accepts a fraction after the seconds field even when the
	// layout has none.
	if !strings.Contains(s, ".") {
		if t, err := time.Parse(layoutSeconds, s); err == nil {
			return t.In(c.location), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, s)
}

// MarshalJSON encodes t as a JSON string.
func (c *Codec) MarshalJSON(t time.Time) ([]byte, error) {
	return json.Marshal(c.Format(t))
}

// UnmarshalJSON decodes a JSON string produced by MarshalJSON or by a
// JavaScript client.
func (c *Codec) UnmarshalJSON(b []byte) (time.Time, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrDateFormat, err)
	}
	return c.Parse(s)
}
