package edit

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/otc-cli/otc/internal/session"
	"github.com/otc-cli/otc/internal/timeutil"
)

// now is late enough in the day that ordinary office times are in the past.
var now = time.Date(2026, time.August, 31, 18, 0, 0, 0, time.Local)

func wall(value string) int64 {
	ms, ok := timeutil.ParseWallClock(value, now)
	if !ok {
		panic("bad wall clock in test: " + value)
	}

	return ms
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name     string
		input    Input
		expected error
	}{
		{
			name:     "check-out without check-in",
			input:    Input{CheckOut: "17:00"},
			expected: ErrCheckOutWithoutCheckIn,
		},
		{
			name:     "check-out before check-in",
			input:    Input{CheckIn: "09:00", CheckOut: "08:00"},
			expected: ErrCheckOutBeforeCheckIn,
		},
		{
			name:     "check-out equal to check-in",
			input:    Input{CheckIn: "09:00", CheckOut: "09:00"},
			expected: ErrCheckOutBeforeCheckIn,
		},
		{
			name:     "check-out in the future",
			input:    Input{CheckIn: "09:00", CheckOut: "19:00"},
			expected: ErrCheckOutInFuture,
		},
		{
			name:     "check-in in the future without check-out",
			input:    Input{CheckIn: "19:00"},
			expected: ErrCheckInInFuture,
		},
		{
			name: "break row without a start",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{End: "12:30"}},
			},
			expected: ErrBreakMissingStart,
		},
		{
			name: "break before check-in",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "08:30", End: "08:45"}},
			},
			expected: ErrBreakBeforeCheckIn,
		},
		{
			name: "ongoing break with check-out set",
			input: Input{
				CheckIn:  "09:00",
				CheckOut: "17:00",
				Rows:     []Row{{Start: "12:00"}},
			},
			expected: ErrOngoingAfterCheckOut,
		},
		{
			name: "two ongoing breaks",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "12:00"}, {Start: "14:00"}},
			},
			expected: ErrMultipleOngoing,
		},
		{
			name: "ongoing break in the future",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "19:00"}},
			},
			expected: ErrOngoingInFuture,
		},
		{
			name: "break end before start",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "12:30", End: "12:00"}},
			},
			expected: ErrBreakEndBeforeStart,
		},
		{
			name: "break end after check-out",
			input: Input{
				CheckIn:  "09:00",
				CheckOut: "17:00",
				Rows:     []Row{{Start: "16:00", End: "17:30"}},
			},
			expected: ErrBreakEndAfterCheckOut,
		},
		{
			name: "break end in the future for an active session",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "12:00", End: "19:00"}},
			},
			expected: ErrBreakEndInFuture,
		},
		{
			name: "overlapping breaks",
			input: Input{
				CheckIn: "09:00",
				Rows: []Row{
					{Start: "09:30", End: "10:00"},
					{Start: "09:45", End: "10:15"},
				},
			},
			expected: ErrBreakOverlap,
		},
		{
			name: "overlap detected regardless of row order",
			input: Input{
				CheckIn: "09:00",
				Rows: []Row{
					{Start: "09:45", End: "10:15"},
					{Start: "09:30", End: "10:00"},
				},
			},
			expected: ErrBreakOverlap,
		},
		{
			name: "breaks without a check-in",
			input: Input{
				Rows: []Row{{Start: "12:00", End: "12:30"}},
			},
			expected: ErrBreaksWithoutCheckIn,
		},
		{
			name:     "malformed check-in is rejected, not cleared",
			input:    Input{CheckIn: "9am"},
			expected: ErrInvalidTimeFormat,
		},
		{
			name:     "malformed check-out",
			input:    Input{CheckIn: "09:00", CheckOut: "17.00"},
			expected: ErrInvalidTimeFormat,
		},
		{
			name: "malformed break start",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "noon", End: "12:30"}},
			},
			expected: ErrInvalidTimeFormat,
		},
		{
			name: "malformed break end",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "12:00", End: "12:3o"}},
			},
			expected: ErrInvalidTimeFormat,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.input, now)
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, but got: %v", tc.expected, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		input    Input
		expected *Result
	}{
		{
			name:  "everything cleared",
			input: Input{},
			expected: &Result{
				Breaks: []session.Break{},
			},
		},
		{
			name:  "check-in only",
			input: Input{CheckIn: "09:00"},
			expected: &Result{
				CheckInTime: wall("09:00"),
				Breaks:      []session.Break{},
			},
		},
		{
			name: "completed day with breaks",
			input: Input{
				CheckIn:  "09:00",
				CheckOut: "17:00",
				Rows: []Row{
					{Start: "14:00", End: "14:15"},
					{Start: "12:00", End: "12:30"},
				},
			},
			expected: &Result{
				CheckInTime:  wall("09:00"),
				CheckOutTime: wall("17:00"),
				Breaks: []session.Break{
					{Start: wall("12:00"), End: wall("12:30")},
					{Start: wall("14:00"), End: wall("14:15")},
				},
			},
		},
		{
			name: "touching breaks do not overlap",
			input: Input{
				CheckIn: "09:00",
				Rows: []Row{
					{Start: "12:00", End: "12:30"},
					{Start: "12:30", End: "12:45"},
				},
			},
			expected: &Result{
				CheckInTime: wall("09:00"),
				Breaks: []session.Break{
					{Start: wall("12:00"), End: wall("12:30")},
					{Start: wall("12:30"), End: wall("12:45")},
				},
			},
		},
		{
			name: "ongoing break",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{Start: "14:00"}},
			},
			expected: &Result{
				CheckInTime:    wall("09:00"),
				Breaks:         []session.Break{},
				BreakStartTime: wall("14:00"),
			},
		},
		{
			name: "blank rows are skipped",
			input: Input{
				CheckIn: "09:00",
				Rows:    []Row{{}, {}, {Start: "12:00", End: "12:30"}},
			},
			expected: &Result{
				CheckInTime: wall("09:00"),
				Breaks: []session.Break{
					{Start: wall("12:00"), End: wall("12:30")},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Validate(tc.input, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	sess := &session.Session{
		Date:           "2026-08-31",
		CheckInTime:    wall("07:00"),
		BreakStartTime: wall("11:00"),
		Breaks: []session.Break{
			{Start: wall("08:00"), End: wall("08:30")},
		},
		TotalBreakTime: 1800000,
	}

	res, err := Validate(Input{
		CheckIn:  "09:00",
		CheckOut: "17:00",
		Rows:     []Row{{Start: "12:00", End: "13:00"}},
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res.Apply(sess, now)

	if sess.Reconcile() != session.Completed {
		t.Errorf("expected a completed session, but got: %s", sess.Reconcile())
	}

	if sess.BreakStartTime != 0 {
		t.Errorf("expected the open break to be replaced, got %d", sess.BreakStartTime)
	}

	if sess.TotalBreakTime != int64(time.Hour/time.Millisecond) {
		t.Errorf("expected 3600000, but got: %d", sess.TotalBreakTime)
	}

	expectedWorked := int64(7 * time.Hour / time.Millisecond)
	if sess.WorkedTime != expectedWorked {
		t.Errorf("expected %d, but got: %d", expectedWorked, sess.WorkedTime)
	}
}

func TestApplyOngoingBreak(t *testing.T) {
	sess := &session.Session{Date: "2026-08-31"}

	res, err := Validate(Input{
		CheckIn: "09:00",
		Rows:    []Row{{Start: "14:00"}},
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res.Apply(sess, now)

	if sess.Reconcile() != session.OnBreak {
		t.Errorf("expected an on-break session, but got: %s", sess.Reconcile())
	}
}
