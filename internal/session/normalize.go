package session

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/otc-cli/otc/internal/timeutil"
)

// Empty returns a fresh session for the calendar day of now.
func Empty(now time.Time) *Session {
	return &Session{
		Date:   timeutil.DateKey(now),
		Breaks: []Break{},
	}
}

// Decode parses a persisted session payload, tolerating missing fields and
// wrong types, and normalizes the result. It returns nil when nothing usable
// can be recovered; decide the fallback at the call site.
func Decode(data []byte) *Session {
	if len(data) == 0 {
		return nil
	}

	var raw struct {
		Date           any `json:"date"`
		CheckInTime    any `json:"checkInTime"`
		CheckOutTime   any `json:"checkOutTime"`
		BreakStartTime any `json:"breakStartTime"`
		Breaks         any `json:"breaks"`
		TotalBreakTime any `json:"totalBreakTime"`
		WorkedTime     any `json:"workedTime"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	s := &Session{
		CheckInTime:    toMillisOrZero(raw.CheckInTime),
		CheckOutTime:   toMillisOrZero(raw.CheckOutTime),
		BreakStartTime: toMillisOrZero(raw.BreakStartTime),
		Breaks:         coerceBreaks(raw.Breaks),
		TotalBreakTime: toMillisOrZero(raw.TotalBreakTime),
		WorkedTime:     toMillisOrZero(raw.WorkedTime),
	}

	if str, ok := raw.Date.(string); ok {
		s.Date = str
	}

	return Normalize(s)
}

// Normalize sanitizes a session into well-formed shape: a canonical date key,
// positive timestamps, sorted valid breaks, and a recomputed break total.
// It returns nil when the date is uncoercible, meaning the record must be
// treated as absent. Normalize is idempotent.
func Normalize(s *Session) *Session {
	if s == nil {
		return nil
	}

	dateKey, ok := timeutil.ToDateKey(s.Date)
	if !ok {
		return nil
	}

	out := &Session{
		Date:           dateKey,
		CheckInTime:    max(int64(0), s.CheckInTime),
		CheckOutTime:   max(int64(0), s.CheckOutTime),
		BreakStartTime: max(int64(0), s.BreakStartTime),
		Breaks:         normalizeBreaks(s.Breaks),
		TotalBreakTime: max(int64(0), s.TotalBreakTime),
		WorkedTime:     max(int64(0), s.WorkedTime),
	}

	// Cannot be on a break after checking out.
	if out.CheckOutTime > 0 {
		out.BreakStartTime = 0
	}

	if len(out.Breaks) > 0 {
		out.TotalBreakTime = out.CompletedBreakTime().Milliseconds()
	}

	return out
}

// IsToday reports whether the session belongs to the calendar day of now.
func (s *Session) IsToday(now time.Time) bool {
	if s == nil {
		return false
	}

	key, ok := timeutil.ToDateKey(s.Date)

	return ok && key == timeutil.DateKey(now)
}

func normalizeBreaks(breaks []Break) []Break {
	out := make([]Break, 0, len(breaks))

	for _, b := range breaks {
		if b.Valid() {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	return out
}

func coerceBreaks(v any) []Break {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	breaks := make([]Break, 0, len(items))

	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		breaks = append(breaks, Break{
			Start: toMillisOrZero(entry["start"]),
			End:   toMillisOrZero(entry["end"]),
		})
	}

	return breaks
}

// toMillisOrZero coerces a decoded JSON value to a positive millisecond
// count, yielding zero for anything absent, non-numeric, or non-positive.
func toMillisOrZero(v any) int64 {
	var f float64

	switch value := v.(type) {
	case float64:
		f = value
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0
		}

		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}

		f = parsed
	default:
		return 0
	}

	if f <= 0 || f != f || f > float64(1<<62) {
		return 0
	}

	return int64(f)
}
