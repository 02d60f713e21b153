package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form.
const DateLayout = "2006-01-02"

// fallback layouts a browser date picker may send.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Date parses a calendar date and truncates it to midnight UTC.
// Full timestamps are accepted and keep only their calendar day.
func Date(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %q", raw)
}

// ID parses a positive record identifier from a path segment.
func ID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", raw)
	}
	return id, nil
}

// MonthRange returns [start, end) covering the given month in UTC.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, fmt.Errorf("year %d out of range", year)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}
