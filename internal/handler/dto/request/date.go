package request

import (
	"time"

	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/pkg/errs"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000-07:00",
}

// ParseDate accepts both date-only strings and full ISO timestamps; only the
// calendar date survives either way.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return schedule.DateOnly(t), nil
		}
	}
	return time.Time{}, errs.New("invalid date format: " + value)
}
