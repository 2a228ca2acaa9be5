package timeutil

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	got := DateKey(time.Date(2026, time.August, 31, 23, 59, 0, 0, time.Local))

	if got != "2026-08-31" {
		t.Errorf("expected 2026-08-31, but got: %s", got)
	}
}

func TestToDateKey(t *testing.T) {
	cases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"2026-08-31", "2026-08-31", true},
		{" 2026-08-31 ", "2026-08-31", true},
		{"2026-08-31T09:30:00", "2026-08-31", true},
		{"2026/08/31", "2026-08-31", true},
		{"not a date", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ToDateKey(tc.input)
		if ok != tc.ok || got != tc.expected {
			t.Errorf(
				"ToDateKey(%q) = (%q, %v), want (%q, %v)",
				tc.input, got, ok, tc.expected, tc.ok,
			)
		}
	}
}

func TestParseWallClock(t *testing.T) {
	day := time.Date(2026, time.August, 31, 15, 45, 12, 0, time.Local)

	cases := []struct {
		input string
		hour  int
		min   int
		ok    bool
	}{
		{"09:00", 9, 0, true},
		{"23:59", 23, 59, true},
		{"00:00", 0, 0, true},
		{"24:00", 0, 0, false},
		{"09:60", 0, 0, false},
		{"9", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseWallClock(tc.input, day)
		if ok != tc.ok {
			t.Errorf("ParseWallClock(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}

		if !ok {
			continue
		}

		parsed := FromMillis(got)

		if parsed.Hour() != tc.hour || parsed.Minute() != tc.min ||
			parsed.Second() != 0 || DateKey(parsed) != DateKey(day) {
			t.Errorf(
				"ParseWallClock(%q) = %v, want %02d:%02d on %s",
				tc.input, parsed, tc.hour, tc.min, DateKey(day),
			)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		input    time.Duration
		expected string
	}{
		{0, "00:00:00"},
		{-time.Minute, "00:00:00"},
		{90 * time.Second, "00:01:30"},
		{8*time.Hour + 30*time.Minute, "08:30:00"},
		{25 * time.Hour, "25:00:00"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.input); got != tc.expected {
			t.Errorf(
				"FormatDuration(%v) = %q, want %q",
				tc.input, got, tc.expected,
			)
		}
	}
}

func TestFormatClock(t *testing.T) {
	noon := ToMillis(time.Date(2026, time.August, 31, 13, 5, 9, 0, time.Local))

	if got := FormatClock(noon, true, false); got != "13:05" {
		t.Errorf("expected 13:05, but got: %s", got)
	}

	if got := FormatClock(noon, true, true); got != "13:05:09" {
		t.Errorf("expected 13:05:09, but got: %s", got)
	}

	if got := FormatClock(0, true, false); got != "-" {
		t.Errorf("expected -, but got: %s", got)
	}
}

func TestFormatWallClockRoundTrip(t *testing.T) {
	day := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local)

	ms, ok := ParseWallClock("14:30", day)
	if !ok {
		t.Fatal("expected 14:30 to parse")
	}

	if got := FormatWallClock(ms); got != "14:30" {
		t.Errorf("expected 14:30, but got: %s", got)
	}

	if got := FormatWallClock(0); got != "" {
		t.Errorf("expected empty string, but got: %s", got)
	}
}
