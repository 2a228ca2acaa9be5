// Package tracker operates the daily attendance state machine: check-in,
// breaks, check-out, manual corrections, and the daily reset.
package tracker

import (
	"encoding/json"
	"log/slog"
	"os/exec"
	"strconv"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/otc-cli/otc/config"
	"github.com/otc-cli/otc/internal/edit"
	"github.com/otc-cli/otc/internal/session"
	"github.com/otc-cli/otc/internal/timeutil"
	"github.com/otc-cli/otc/internal/ui"
	"github.com/otc-cli/otc/store"
)

const checkOutPrompt = "Are you sure you want to check out? " +
	"This will complete today's session."

// Settings are the persisted user settings.
type Settings struct {
	RamadanMode bool `json:"ramadanMode"`
}

// Tracker owns the single live session and settings. Every mutating
// operation is a synchronous write-through: the envelope is persisted before
// the operation returns. Illegal transitions are silent no-ops.
type Tracker struct {
	Opts *config.App

	store          *store.Fallback
	dialog         ui.Dialog
	clock          Clock
	sess           *session.Session
	settings       Settings
	state          session.State
	theme          string
	notifiedTarget bool
}

// New assembles a tracker over the given collaborators and loads the
// persisted envelope, running the daily reset when the stored session is
// stale.
func New(opts *config.App, db store.DB, dialog ui.Dialog, clock Clock) *Tracker {
	t := &Tracker{
		Opts:   opts,
		store:  store.NewFallback(db),
		dialog: dialog,
		clock:  clock,
	}

	t.load()

	return t
}

// load restores the envelope from storage. Corrupt or missing entries fall
// back to defaults; nothing here is fatal.
func (t *Tracker) load() {
	if value, found := t.store.Get(store.KeyCurrentState); found {
		if s := session.State(value); s.Valid() {
			t.state = s
		}
	}

	now := t.clock.Now()

	raw, found := t.store.Get(store.KeyTodayData)

	t.sess = session.Decode([]byte(raw))
	if t.sess == nil {
		if found {
			slog.Warn("discarding unusable stored session")
		}

		t.sess = session.Empty(now)
	}

	if value, found := t.store.Get(store.KeySettings); found {
		var s Settings

		if err := json.Unmarshal([]byte(value), &s); err != nil {
			slog.Warn("discarding malformed stored settings",
				slog.Any("error", err),
			)
		} else {
			t.settings = s
		}
	}

	t.theme = "light"
	if value, found := t.store.Get(store.KeyTheme); found && value == "dark" {
		t.theme = "dark"
	}

	if !t.DailyResetCheck() {
		t.state = t.sess.Reconcile()
	}
}

// CheckIn starts today's session. Legal only before any check-in has been
// recorded; otherwise nothing happens.
func (t *Tracker) CheckIn() {
	if t.state != session.NotStarted || t.sess.CheckInTime > 0 {
		return
	}

	t.sess.CheckInTime = timeutil.ToMillis(t.clock.Now())
	t.sess.CheckOutTime = 0
	t.sess.BreakStartTime = 0
	t.sess.Breaks = []session.Break{}
	t.sess.TotalBreakTime = 0
	t.sess.WorkedTime = 0
	t.state = session.CheckedIn

	t.persist()
	t.afterTransition()
}

// StartBreak opens a break. Legal only while checked in with no open break.
func (t *Tracker) StartBreak() {
	if t.state != session.CheckedIn || t.sess.CheckInTime <= 0 ||
		t.sess.BreakStartTime > 0 {
		return
	}

	t.sess.BreakStartTime = timeutil.ToMillis(t.clock.Now())
	t.state = session.OnBreak

	t.persist()
	t.afterTransition()
}

// StopBreak closes the open break and returns to work.
func (t *Tracker) StopBreak() {
	if t.state != session.OnBreak || t.sess.BreakStartTime <= 0 {
		return
	}

	t.sess.Breaks = append(t.sess.Breaks, session.Break{
		Start: t.sess.BreakStartTime,
		End:   timeutil.ToMillis(t.clock.Now()),
	})
	t.sess.BreakStartTime = 0
	t.sess.TotalBreakTime = t.sess.CompletedBreakTime().Milliseconds()
	t.state = session.CheckedIn

	t.persist()
	t.afterTransition()
}

// CanCheckOut reports whether a checkout may be requested from the current
// state.
func (t *Tracker) CanCheckOut() bool {
	return (t.state == session.CheckedIn || t.state == session.OnBreak) &&
		t.sess.CheckInTime > 0
}

// CheckOut asks for confirmation through the dialog collaborator and, if the
// user agrees, completes today's session. It reports whether the session was
// completed.
func (t *Tracker) CheckOut() (bool, error) {
	if !t.CanCheckOut() {
		return false, nil
	}

	confirmed, err := t.dialog.Confirm(checkOutPrompt, "Confirm Check Out")
	if err != nil || !confirmed {
		return false, err
	}

	t.CompleteCheckOut()

	return true, nil
}

// CompleteCheckOut applies a confirmed checkout: an open break is closed as
// part of the operation, the cached totals are finalized, and the session
// becomes Completed. Callers must have obtained the user's confirmation.
func (t *Tracker) CompleteCheckOut() {
	if !t.CanCheckOut() {
		return
	}

	now := timeutil.ToMillis(t.clock.Now())

	if t.state == session.OnBreak && t.sess.BreakStartTime > 0 {
		t.sess.Breaks = append(t.sess.Breaks, session.Break{
			Start: t.sess.BreakStartTime,
			End:   now,
		})
		t.sess.BreakStartTime = 0
	}

	t.sess.TotalBreakTime = t.sess.CompletedBreakTime().Milliseconds()
	t.sess.CheckOutTime = now
	t.sess.WorkedTime = t.sess.Worked(t.clock.Now()).Milliseconds()
	t.state = session.Completed

	t.persist()
	t.notifyCheckOut()
	t.afterTransition()
}

// ApplyEdit validates a manual time edit and applies it atomically. A
// validation failure is surfaced through the notice prompt and leaves the
// session untouched.
func (t *Tracker) ApplyEdit(in edit.Input) error {
	now := t.clock.Now()

	result, err := edit.Validate(in, now)
	if err != nil {
		t.dialog.Notify(err.Error(), "Invalid Time")

		return err
	}

	result.Apply(t.sess, now)
	t.state = t.sess.Reconcile()

	t.persist()

	return nil
}

// DailyResetCheck discards the session when it no longer belongs to today's
// calendar day and persists a fresh one. It reports whether a reset fired.
func (t *Tracker) DailyResetCheck() bool {
	if t.sess.IsToday(t.clock.Now()) {
		return false
	}

	t.sess = session.Empty(t.clock.Now())
	t.state = session.NotStarted
	t.notifiedTarget = false

	t.persist()

	return true
}

// Session returns the live session record.
func (t *Tracker) Session() *session.Session {
	return t.sess
}

// State returns the current state label.
func (t *Tracker) State() session.State {
	return t.state
}

// Settings returns the persisted user settings.
func (t *Tracker) Settings() Settings {
	return t.settings
}

// SetRamadanMode toggles the reduced daily target and persists immediately.
func (t *Tracker) SetRamadanMode(enabled bool) {
	t.settings.RamadanMode = enabled

	t.persist()
}

// Target returns the active daily target.
func (t *Tracker) Target() int64 {
	return t.Opts.Target(t.settings.RamadanMode).Milliseconds()
}

// Theme returns the persisted theme preference.
func (t *Tracker) Theme() string {
	return t.theme
}

// SetTheme persists the theme preference. It lives outside the schema
// version.
func (t *Tracker) SetTheme(theme string) {
	if theme != "light" && theme != "dark" {
		return
	}

	t.theme = theme
	t.store.Set(store.KeyTheme, theme)
}

// persist writes the whole envelope through the fallback store. Failures are
// logged there and never reach the state machine.
func (t *Tracker) persist() {
	t.store.Set(store.KeySchemaVersion, strconv.Itoa(store.SchemaVersion))
	t.store.Set(store.KeyCurrentState, string(t.state))

	sessBytes, err := json.Marshal(t.sess)
	if err != nil {
		slog.Error("marshalling session failed", slog.Any("error", err))
	} else {
		t.store.Set(store.KeyTodayData, string(sessBytes))
	}

	settingsBytes, err := json.Marshal(t.settings)
	if err != nil {
		slog.Error("marshalling settings failed", slog.Any("error", err))
	} else {
		t.store.Set(store.KeySettings, string(settingsBytes))
	}
}

// afterTransition executes the configured post-transition command, if any.
func (t *Tracker) afterTransition() {
	if t.Opts == nil || t.Opts.SessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(t.Opts.SessionCmd)
	if err != nil {
		slog.Error("unable to parse settings.cmd option",
			slog.Any("error", err),
		)

		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		slog.Error("settings.cmd failed", slog.Any("error", err))
	}
}

func (t *Tracker) notifyCheckOut() {
	if t.Opts == nil || !t.Opts.Notify {
		return
	}

	worked := timeutil.FormatDuration(t.sess.Worked(t.clock.Now()))

	err := beeep.Notify(
		"Checked out",
		"You worked "+worked+" today.",
		"",
	)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// NotifyTargetReached sends a one-shot desktop notification the first time
// the worked time crosses the daily target while the session is active.
func (t *Tracker) NotifyTargetReached() {
	if t.notifiedTarget || t.Opts == nil || !t.Opts.Notify {
		return
	}

	if t.state != session.CheckedIn && t.state != session.OnBreak {
		return
	}

	now := t.clock.Now()
	if t.sess.Worked(now).Milliseconds() < t.Target() {
		return
	}

	t.notifiedTarget = true

	err := beeep.Notify(
		"Daily target reached",
		"You have met today's work target.",
		"",
	)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}
