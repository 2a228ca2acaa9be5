// Package edit validates user-supplied wall-clock corrections to today's
// check-in, check-out, and break times. Validation is fail-fast: the first
// violation aborts the whole edit with a human-readable reason and nothing
// is applied.
package edit

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/otc-cli/otc/internal/session"
	"github.com/otc-cli/otc/internal/timeutil"
)

var (
	ErrCheckOutWithoutCheckIn = errors.New(
		"Set check-in time before check-out time.",
	)
	ErrCheckOutBeforeCheckIn = errors.New(
		"Check-out time must be after check-in time.",
	)
	ErrCheckOutInFuture = errors.New(
		"Check-out time cannot be in the future. Clear check-out to keep the timer running.",
	)
	ErrCheckInInFuture = errors.New(
		"Check-in time cannot be in the future. Use current or earlier machine time.",
	)
	ErrBreakMissingStart = errors.New(
		"Each break must have a valid start time.",
	)
	ErrBreakBeforeCheckIn = errors.New(
		"Break start time must be after check-in time.",
	)
	ErrOngoingAfterCheckOut = errors.New(
		"Break end time is required when check-out time is set.",
	)
	ErrMultipleOngoing = errors.New(
		"Only one ongoing break is allowed.",
	)
	ErrOngoingInFuture = errors.New(
		"Ongoing break start cannot be in the future.",
	)
	ErrBreakEndBeforeStart = errors.New(
		"Break end time must be after break start time.",
	)
	ErrBreakEndAfterCheckOut = errors.New(
		"Break end time must be before check-out time.",
	)
	ErrBreakEndInFuture = errors.New(
		"Break end time cannot be in the future for an active session.",
	)
	ErrBreakOverlap = errors.New(
		"Break times cannot overlap.",
	)
	ErrBreaksWithoutCheckIn = errors.New(
		"Set check-in time before adding breaks.",
	)
	ErrInvalidTimeFormat = errors.New(
		"Invalid time format. Use HH:MM (24-hour).",
	)
)

// Row is one break entry in the edit form. Times are HH:MM strings; an empty
// End marks the row as ongoing, and a row that is entirely empty is skipped.
type Row struct {
	Start string
	End   string
}

// Input carries the complete edit: every field replaces its counterpart in
// the session, so an empty value clears the corresponding timestamp.
type Input struct {
	CheckIn  string
	CheckOut string
	Rows     []Row
}

// Result is a validated edit, ready to be applied atomically.
type Result struct {
	CheckInTime    int64
	CheckOutTime   int64
	Breaks         []session.Break
	BreakStartTime int64
}

// Validate parses the input against the calendar day of now and runs the full
// validation sequence. Either every field is valid and a Result is returned,
// or the first violation is reported and the session must remain untouched.
func Validate(in Input, now time.Time) (*Result, error) {
	nowMs := timeutil.ToMillis(now)

	checkIn, err := parseField(in.CheckIn, now)
	if err != nil {
		return nil, err
	}

	checkOut, err := parseField(in.CheckOut, now)
	if err != nil {
		return nil, err
	}

	if checkOut > 0 && checkIn <= 0 {
		return nil, ErrCheckOutWithoutCheckIn
	}

	if checkIn > 0 && checkOut > 0 && checkOut <= checkIn {
		return nil, ErrCheckOutBeforeCheckIn
	}

	if checkOut > 0 && checkOut > nowMs {
		return nil, ErrCheckOutInFuture
	}

	if checkIn > 0 && checkOut <= 0 && checkIn > nowMs {
		return nil, ErrCheckInInFuture
	}

	var (
		completed    []session.Break
		ongoingStart int64
	)

	for _, row := range in.Rows {
		if row.Start == "" && row.End == "" {
			continue
		}

		start, err := parseField(row.Start, now)
		if err != nil {
			return nil, err
		}

		end, err := parseField(row.End, now)
		if err != nil {
			return nil, err
		}

		if start <= 0 {
			return nil, ErrBreakMissingStart
		}

		if checkIn > 0 && start <= checkIn {
			return nil, ErrBreakBeforeCheckIn
		}

		if end <= 0 {
			if checkOut > 0 {
				return nil, ErrOngoingAfterCheckOut
			}

			if ongoingStart > 0 {
				return nil, ErrMultipleOngoing
			}

			if start > nowMs {
				return nil, ErrOngoingInFuture
			}

			ongoingStart = start

			continue
		}

		if end <= start {
			return nil, ErrBreakEndBeforeStart
		}

		if checkOut > 0 && end > checkOut {
			return nil, ErrBreakEndAfterCheckOut
		}

		if checkOut <= 0 && end > nowMs {
			return nil, ErrBreakEndInFuture
		}

		completed = append(completed, session.Break{Start: start, End: end})
	}

	sort.Slice(completed, func(i, j int) bool {
		return completed[i].Start < completed[j].Start
	})

	for i := 1; i < len(completed); i++ {
		if completed[i].Start < completed[i-1].End {
			return nil, ErrBreakOverlap
		}
	}

	if checkIn <= 0 && (len(completed) > 0 || ongoingStart > 0) {
		return nil, ErrBreaksWithoutCheckIn
	}

	if completed == nil {
		completed = []session.Break{}
	}

	return &Result{
		CheckInTime:    checkIn,
		CheckOutTime:   checkOut,
		Breaks:         completed,
		BreakStartTime: ongoingStart,
	}, nil
}

// parseField parses one wall-clock form value. An empty value means "clear"
// and yields zero; anything else must parse as HH:MM or the edit is rejected.
func parseField(value string, now time.Time) (int64, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}

	ms, ok := timeutil.ParseWallClock(value, now)
	if !ok {
		return 0, ErrInvalidTimeFormat
	}

	return ms, nil
}

// Apply replaces the session's editable fields with the validated values and
// recomputes the cached totals.
func (r *Result) Apply(s *session.Session, now time.Time) {
	s.CheckInTime = r.CheckInTime
	s.CheckOutTime = r.CheckOutTime
	s.Breaks = r.Breaks
	s.BreakStartTime = r.BreakStartTime
	s.TotalBreakTime = s.CompletedBreakTime().Milliseconds()

	if s.CheckInTime > 0 {
		s.WorkedTime = s.Worked(now).Milliseconds()
	} else {
		s.WorkedTime = 0
	}
}
