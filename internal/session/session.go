// Package session defines the daily attendance session and the accounting
// rules that derive worked and break time from its timestamps.
package session

import (
	"time"

	"github.com/otc-cli/otc/internal/timeutil"
)

// State identifies where the day's session is in its lifecycle. It is always
// re-derivable from the session's timestamps; the stored label is a cache,
// never a source of truth.
type State string

const (
	NotStarted State = "not_started"
	CheckedIn  State = "checked_in"
	OnBreak    State = "on_break"
	Completed  State = "completed"
)

// Valid reports whether s is one of the four known states.
func (s State) Valid() bool {
	switch s {
	case NotStarted, CheckedIn, OnBreak, Completed:
		return true
	}

	return false
}

// Label returns the human-readable form of the state.
func (s State) Label() string {
	switch s {
	case CheckedIn:
		return "Working"
	case OnBreak:
		return "On Break"
	case Completed:
		return "Completed"
	default:
		return "Not Started"
	}
}

// Break is a completed break interval. Both ends are epoch milliseconds.
type Break struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Valid reports whether the interval is well-formed: a positive start and an
// end strictly after it.
func (b Break) Valid() bool {
	return b.Start > 0 && b.End > b.Start
}

// Duration returns the length of the interval, or zero if it is not valid.
func (b Break) Duration() time.Duration {
	if !b.Valid() {
		return 0
	}

	return time.Duration(b.End-b.Start) * time.Millisecond
}

// Session tracks one calendar day's check-in, check-out, and breaks. All
// timestamp fields are epoch milliseconds; a value less than or equal to zero
// means the field is unset. TotalBreakTime and WorkedTime are cached
// snapshots in milliseconds, recomputed from the timestamps and never
// authoritative while the session is active.
type Session struct {
	Date           string  `json:"date"`
	CheckInTime    int64   `json:"checkInTime"`
	CheckOutTime   int64   `json:"checkOutTime"`
	BreakStartTime int64   `json:"breakStartTime"`
	Breaks         []Break `json:"breaks"`
	TotalBreakTime int64   `json:"totalBreakTime"`
	WorkedTime     int64   `json:"workedTime"`
}

// Reconcile derives the canonical state from the timestamp fields alone.
// Precedence: no check-in, then check-out, then an open break.
func (s *Session) Reconcile() State {
	if s == nil || s.CheckInTime <= 0 {
		return NotStarted
	}

	if s.CheckOutTime > 0 {
		return Completed
	}

	if s.BreakStartTime > 0 {
		return OnBreak
	}

	return CheckedIn
}

// CompletedBreakTime sums the durations of all valid completed breaks.
// Invalid entries are skipped rather than erroring. When no break list exists
// at all, the cached total is trusted, clamped to zero.
func (s *Session) CompletedBreakTime() time.Duration {
	if s == nil {
		return 0
	}

	if s.Breaks == nil {
		return time.Duration(max(int64(0), s.TotalBreakTime)) * time.Millisecond
	}

	var total time.Duration

	for _, b := range s.Breaks {
		total += b.Duration()
	}

	return total
}

// ActiveBreakTotal is the completed break time plus the elapsed portion of an
// open break. An open break only counts while the session has not been
// checked out.
func (s *Session) ActiveBreakTotal(now time.Time) time.Duration {
	completed := s.CompletedBreakTime()

	if s == nil || s.BreakStartTime <= 0 || s.CheckOutTime > 0 {
		return completed
	}

	elapsed := timeutil.ToMillis(now) - s.BreakStartTime
	if elapsed < 0 {
		elapsed = 0
	}

	return completed + time.Duration(elapsed)*time.Millisecond
}

// Worked returns the time worked so far: check-in to check-out (or now while
// active) minus all break time, floored at zero.
func (s *Session) Worked(now time.Time) time.Duration {
	if s == nil || s.CheckInTime <= 0 {
		return 0
	}

	end := s.CheckOutTime
	if end <= 0 {
		end = timeutil.ToMillis(now)
	}

	total := time.Duration(max(int64(0), end-s.CheckInTime)) * time.Millisecond

	worked := total - s.ActiveBreakTotal(now)
	if worked < 0 {
		worked = 0
	}

	return worked
}

// Remaining returns the time left until the daily target is met, floored at
// zero.
func (s *Session) Remaining(target time.Duration, now time.Time) time.Duration {
	remaining := target - s.Worked(now)
	if remaining < 0 {
		remaining = 0
	}

	return remaining
}

// EstimatedCheckout projects the instant at which the daily target will be
// met: check-in plus target plus all break time taken so far. It reports
// false when no check-in exists.
func (s *Session) EstimatedCheckout(
	target time.Duration,
	now time.Time,
) (int64, bool) {
	if s == nil || s.CheckInTime <= 0 {
		return 0, false
	}

	return s.CheckInTime + target.Milliseconds() +
		s.ActiveBreakTotal(now).Milliseconds(), true
}

// BreakCount returns the number of breaks taken, counting an open break.
func (s *Session) BreakCount() int {
	if s == nil {
		return 0
	}

	n := len(s.Breaks)
	if s.BreakStartTime > 0 {
		n++
	}

	return n
}
