package tracker

import (
	"fmt"
	"time"

	"github.com/otc-cli/otc/internal/timeutil"
)

// BreakRow is one formatted break entry for presentation collaborators.
type BreakRow struct {
	Label    string
	Start    string
	End      string
	Duration string
}

// Status is a snapshot of every derived display value, recomputed on demand
// from the session and the clock.
type Status struct {
	State             string
	StateLabel        string
	CheckIn           string
	CheckOut          string
	Worked            string
	Remaining         string
	Target            string
	EstimatedCheckout string
	BreakTotal        string
	BreakCount        int
	Progress          float64
	Rows              []BreakRow
}

// Status derives the current display snapshot. It performs pure reads only.
func (t *Tracker) Status() Status {
	now := t.clock.Now()
	target := t.Opts.Target(t.settings.RamadanMode)
	twentyFour := t.Opts.TwentyFourHour

	worked := t.sess.Worked(now)

	progress := 0.0
	if target > 0 {
		progress = float64(worked) / float64(target)
		if progress > 1 {
			progress = 1
		}
	}

	estimated := "-"
	if ts, ok := t.sess.EstimatedCheckout(target, now); ok {
		estimated = timeutil.FormatClock(ts, twentyFour, true)
	}

	return Status{
		State:             string(t.state),
		StateLabel:        t.state.Label(),
		CheckIn:           timeutil.FormatClock(t.sess.CheckInTime, twentyFour, false),
		CheckOut:          timeutil.FormatClock(t.sess.CheckOutTime, twentyFour, false),
		Worked:            timeutil.FormatDuration(worked),
		Remaining:         timeutil.FormatDuration(t.sess.Remaining(target, now)),
		Target:            timeutil.FormatDuration(target),
		EstimatedCheckout: estimated,
		BreakTotal:        timeutil.FormatDuration(t.sess.ActiveBreakTotal(now)),
		BreakCount:        t.sess.BreakCount(),
		Progress:          progress,
		Rows:              t.breakRows(now),
	}
}

func (t *Tracker) breakRows(now time.Time) []BreakRow {
	twentyFour := t.Opts.TwentyFourHour

	rows := make([]BreakRow, 0, t.sess.BreakCount())

	for i, b := range t.sess.Breaks {
		rows = append(rows, BreakRow{
			Label:    fmt.Sprintf("Break %d", i+1),
			Start:    timeutil.FormatClock(b.Start, twentyFour, false),
			End:      timeutil.FormatClock(b.End, twentyFour, false),
			Duration: timeutil.FormatDuration(b.Duration()),
		})
	}

	if t.sess.BreakStartTime > 0 {
		elapsed := now.Sub(timeutil.FromMillis(t.sess.BreakStartTime))
		if elapsed < 0 {
			elapsed = 0
		}

		rows = append(rows, BreakRow{
			Label:    fmt.Sprintf("Break %d", len(rows)+1),
			Start:    timeutil.FormatClock(t.sess.BreakStartTime, twentyFour, false),
			End:      "In progress",
			Duration: timeutil.FormatDuration(elapsed),
		})
	}

	return rows
}
