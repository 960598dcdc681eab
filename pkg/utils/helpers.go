package utils

import (
	"fmt"
	"time"
)

// ParseFlexibleDate accepts the date spellings users tend to put in config
// files and normalizes the result to midnight UTC, since order dates carry
// no time-of-day.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	layouts := []string{
		"2006-01-02",
		"2006/01/02",
		"Jan 2, 2006",
		"2006-01-02 15:04:05",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
