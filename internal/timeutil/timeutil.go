// Package timeutil provides utility functions for working with calendar days,
// wall-clock inputs, and millisecond timestamps.
package timeutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateKeyFormat = "2006-01-02"

var dateKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateKey returns the calendar-day key (YYYY-MM-DD) for the given time in its
// own location.
func DateKey(t time.Time) string {
	return t.Format(dateKeyFormat)
}

// ToDateKey coerces an arbitrary stored date value to a canonical day key.
// It reports false if the value cannot be interpreted as a date.
func ToDateKey(value string) (string, bool) {
	value = strings.TrimSpace(value)

	if dateKeyRegex.MatchString(value) {
		return value, true
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006/01/02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return DateKey(t), true
		}
	}

	return "", false
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// ToMillis converts a time value to epoch milliseconds.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts epoch milliseconds to a local time value.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// ParseWallClock interprets an HH:MM value as an instant on the same calendar
// day as day, at the minute boundary. It reports false for empty or malformed
// input.
func ParseWallClock(value string, day time.Time) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	start := RoundToStart(day)

	return ToMillis(start.Add(
		time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute,
	)), true
}

// FormatWallClock renders a millisecond timestamp as a 24-hour HH:MM value
// suitable for re-parsing with ParseWallClock, or "" when absent.
func FormatWallClock(ms int64) string {
	if ms <= 0 {
		return ""
	}

	return FromMillis(ms).Format("15:04")
}

// FormatDuration renders a duration as HH:MM:SS, clamping negative values
// to zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalSeconds := int64(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return pad(hours) + ":" + pad(minutes) + ":" + pad(seconds)
}

// FormatClock renders a millisecond timestamp as a wall-clock time, or "-"
// when the timestamp is absent.
func FormatClock(ms int64, twentyFourHour, showSeconds bool) string {
	if ms <= 0 {
		return "-"
	}

	layout := "03:04 PM"

	switch {
	case twentyFourHour && showSeconds:
		layout = "15:04:05"
	case twentyFourHour:
		layout = "15:04"
	case showSeconds:
		layout = "03:04:05 PM"
	}

	return FromMillis(ms).Format(layout)
}

func pad(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) == 1 {
		return "0" + s
	}

	return s
}
