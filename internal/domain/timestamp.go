package domain

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for incoming dates. Values without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a date or date-time and returns it in UTC
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Timestamp is a time.Time that decodes from any of the accepted layouts
type Timestamp struct {
	time.Time
}

// UnmarshalText implements encoding.TextUnmarshaler for XML character data
func (t *Timestamp) UnmarshalText(text []byte) error {
	v, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}
