package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/campusbuddy/internal/constants"
)

// ParseDate parses a date string (YYYY-MM-DD) as local midnight.
func ParseDate(dateStr string) (time.Time, error) {
	return ParseDateInLocation(dateStr, time.Local)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatDayLabel renders a plan date as "Mon, Jan 2". Unparseable dates are returned unchanged.
func FormatDayLabel(dateStr string) string {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(constants.DayLabelFormat)
}

// Timestamp formats t as an RFC 3339 timestamp in UTC with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampFormat)
}

// FormatTimestamp renders a stored timestamp for display, falling back to the raw value.
func FormatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format(constants.DisplayTimeFormat)
}
