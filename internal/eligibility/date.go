package eligibility

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format of bucket keys.
const DateLayout = "2006-01-02"

var dateInputLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	DateLayout,
}

// ParseDate parses an ISO-8601 date-time or calendar date. Values without an
// offset are read as UTC and the result is always in UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date", value)
}
