package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("dates must be YYYY-MM-DD or RFC 3339")

// parseDate accepts a calendar date (midnight UTC) or a full RFC 3339
// timestamp. An empty value yields the zero time so the usecase can report
// the missing field itself.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}
