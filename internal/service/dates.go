package service

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidInput
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return dateOnly(parsed), nil
		}
	}
	return time.Time{}, ErrInvalidInput
}

// parseRange parses a booking range. A nil or blank end means open-ended.
func parseRange(rawStart string, rawEnd *string) (time.Time, *time.Time, error) {
	start, err := parseDate(rawStart)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: start date %q is missing or malformed", ErrInvalidDateRange, rawStart)
	}
	if rawEnd == nil || strings.TrimSpace(*rawEnd) == "" {
		return start, nil, nil
	}

	end, err := parseDate(*rawEnd)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: end date %q is malformed", ErrInvalidDateRange, *rawEnd)
	}
	if end.Before(start) {
		return time.Time{}, nil, fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidDateRange, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return start, &end, nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
