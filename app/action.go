package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/otc-cli/otc/config"
	"github.com/otc-cli/otc/internal/edit"
	"github.com/otc-cli/otc/internal/session"
	"github.com/otc-cli/otc/internal/timeutil"
	"github.com/otc-cli/otc/internal/ui"
	"github.com/otc-cli/otc/report"
	"github.com/otc-cli/otc/store"
	"github.com/otc-cli/otc/tracker"
)

const (
	envNoColor    = "NO_COLOR"
	envOtcNoColor = "OTC_NO_COLOR"
)

var errInvalidSetting = errors.New(
	"invalid setting value: expected 'on' or 'off'",
)

var appConfig *config.App

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func beforeAction(ctx *cli.Context) error {
	if ctx.Bool("no-color") ||
		firstNonEmptyString(
			os.Getenv(envNoColor),
			os.Getenv(envOtcNoColor),
		) != "" {
		disableStyling()
	}

	config.InitializePaths()
	config.InitLogger()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	appConfig = cfg

	return nil
}

// newTracker opens the database and loads the tracker over it. When the
// database file is unusable for any reason other than being locked, the
// tracker degrades to in-memory-only operation with a logged diagnostic.
func newTracker() (*tracker.Tracker, func(), error) {
	var db store.DB

	client, err := store.NewClient(config.DBFilePath())

	switch {
	case err == nil:
		db = client
	case errors.Is(err, store.ErrAlreadyRunning):
		return nil, nil, err
	default:
		slog.Error("opening database failed, continuing in memory",
			slog.Any("error", err),
		)

		db = store.NewMemory()
	}

	t := tracker.New(appConfig, db, ui.TerminalDialog{}, tracker.SystemClock{})
	ui.DarkTheme = t.Theme() == "dark"

	return t, func() { _ = db.Close() }, nil
}

func checkInAction(_ *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		return err
	}
	defer closeDB()

	t.CheckIn()
	printStatus(t)

	return nil
}

func startBreakAction(_ *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		return err
	}
	defer closeDB()

	t.StartBreak()
	printStatus(t)

	return nil
}

func stopBreakAction(_ *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		return err
	}
	defer closeDB()

	t.StopBreak()
	printStatus(t)

	return nil
}

func checkOutAction(_ *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		return err
	}
	defer closeDB()

	completed, err := t.CheckOut()
	if err != nil {
		return err
	}

	if completed {
		report.Saved("today's session is complete")
	}

	printStatus(t)

	return nil
}

func statusAction(_ *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		if !errors.Is(err, store.ErrAlreadyRunning) {
			return err
		}

		// A running dashboard holds the database lock: answer from its
		// status snapshot instead.
		s, ferr := tracker.ReadStatusFile()
		if ferr != nil {
			return err
		}

		pterm.Printfln(
			"%s: worked %s, %s remaining (target %s, est. checkout %s)",
			s.State,
			ui.Highlight(s.Worked),
			s.Remaining,
			s.Target,
			s.EstimatedCheckout,
		)

		return nil
	}
	defer closeDB()

	printStatus(t)

	return nil
}

func watchAction(_ *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		return err
	}
	defer closeDB()

	return tracker.NewModel(t).Run()
}

func editAction(ctx *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		return err
	}
	defer closeDB()

	input := editInput(ctx, t)

	if err := t.ApplyEdit(input); err != nil {
		// The reason was already surfaced through the notice prompt.
		return cli.Exit("", 1)
	}

	report.Saved("times updated")
	printStatus(t)

	return nil
}

// editInput builds the full edit form: fields not mentioned on the command
// line keep their recorded values, so the validator always sees the complete
// picture.
func editInput(ctx *cli.Context, t *tracker.Tracker) edit.Input {
	sess := t.Session()

	input := edit.Input{
		CheckIn:  timeutil.FormatWallClock(sess.CheckInTime),
		CheckOut: timeutil.FormatWallClock(sess.CheckOutTime),
	}

	for _, b := range sess.Breaks {
		input.Rows = append(input.Rows, edit.Row{
			Start: timeutil.FormatWallClock(b.Start),
			End:   timeutil.FormatWallClock(b.End),
		})
	}

	if sess.BreakStartTime > 0 {
		input.Rows = append(input.Rows, edit.Row{
			Start: timeutil.FormatWallClock(sess.BreakStartTime),
		})
	}

	if ctx.IsSet("check-in") {
		input.CheckIn = ctx.String("check-in")
	}

	if ctx.IsSet("check-out") {
		input.CheckOut = ctx.String("check-out")
	}

	if ctx.Bool("clear-check-in") {
		input.CheckIn = ""
	}

	if ctx.Bool("clear-check-out") {
		input.CheckOut = ""
	}

	if ctx.IsSet("break") || ctx.Bool("clear-breaks") {
		input.Rows = nil

		for _, rng := range ctx.StringSlice("break") {
			start, end, _ := strings.Cut(rng, "-")

			input.Rows = append(input.Rows, edit.Row{
				Start: strings.TrimSpace(start),
				End:   strings.TrimSpace(end),
			})
		}
	}

	return input
}

func settingsAction(ctx *cli.Context) error {
	t, closeDB, err := newTracker()
	if err != nil {
		return err
	}
	defer closeDB()

	changed := false

	if ctx.IsSet("ramadan") {
		switch ctx.String("ramadan") {
		case "on":
			t.SetRamadanMode(true)
		case "off":
			t.SetRamadanMode(false)
		default:
			return errInvalidSetting
		}

		changed = true
	}

	if ctx.IsSet("theme") {
		theme := ctx.String("theme")
		if theme != "light" && theme != "dark" {
			return fmt.Errorf("invalid theme: %s", theme)
		}

		t.SetTheme(theme)
		ui.DarkTheme = theme == "dark"
		changed = true
	}

	if changed {
		report.Saved("settings updated")
	}

	status := t.Status()

	pterm.Printfln("ramadan mode: %v", t.Settings().RamadanMode)
	pterm.Printfln("theme: %s", t.Theme())
	pterm.Printfln("daily target: %s", status.Target)

	return nil
}

func editConfigAction(_ *cli.Context) error {
	editor := firstNonEmptyString(os.Getenv("VISUAL"), os.Getenv("EDITOR"), "vi")

	cmd := exec.Command(editor, config.ConfigFilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// printStatus renders the current attendance snapshot to stdout.
func printStatus(t *tracker.Tracker) {
	status := t.Status()

	var badge string

	switch t.State() {
	case session.CheckedIn:
		badge = ui.Green("[" + status.StateLabel + "]")
	case session.OnBreak:
		badge = ui.Blue("[" + status.StateLabel + "]")
	case session.Completed:
		badge = ui.Magenta("[" + status.StateLabel + "]")
	default:
		badge = ui.Yellow("[" + status.StateLabel + "]")
	}

	pterm.Printfln("%s checked in: %s, checked out: %s",
		badge,
		ui.Highlight(status.CheckIn),
		ui.Highlight(status.CheckOut),
	)
	pterm.Printfln("worked %s of %s (%s remaining)",
		ui.Highlight(status.Worked),
		status.Target,
		status.Remaining,
	)
	pterm.Printfln("estimated checkout: %s", status.EstimatedCheckout)

	if len(status.Rows) == 0 {
		return
	}

	tableBody := make([][]string, 0, len(status.Rows)+1)
	tableBody = append(tableBody, []string{"BREAK", "START", "END", "DURATION"})

	for _, row := range status.Rows {
		tableBody = append(tableBody, []string{
			row.Label,
			row.Start,
			row.End,
			row.Duration,
		})
	}

	ui.PrintTable(tableBody, os.Stdout)
}
