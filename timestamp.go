package amr

import (
	"fmt"
	"time"
)

// timestampLayout is the boundary representation of instants: ISO-8601 in
// UTC without an explicit zone offset, fractional seconds to microsecond
// precision when present.
const timestampLayout = "2006-01-02T15:04:05.999999"

// FormatTimestamp renders t in the boundary timestamp form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp parses a boundary timestamp. Offset-less input is taken as
// UTC; RFC 3339 input with an explicit offset is also accepted and
// normalized to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("amr: invalid timestamp %q", s)
	}
	return t.UTC(), nil
}
