package tracker

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
)

// handleTick refreshes the derived display values. It runs the daily-reset
// check first so a dashboard left open overnight rolls over to a fresh
// session.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.tracker.DailyResetCheck()
	m.tracker.NotifyTargetReached()

	_ = m.tracker.WriteStatusFile()

	return m, tick()
}

// openConfirm starts the two-phase checkout: the request opens a pending
// form, and the decision is applied when the form completes.
func (m *Model) openConfirm() {
	if m.confirm != nil || !m.tracker.CanCheckOut() {
		return
	}

	m.confirmed = false
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Confirm Check Out").
				Description(checkOutPrompt).
				Affirmative("Yes").
				Negative("No").
				Value(&m.confirmed),
		),
	)
}

func (m *Model) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, defaultKeymap.quit) {
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		slog.Debug(spew.Sdump(keyMsg))
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State == huh.StateCompleted {
		if m.confirmed {
			m.tracker.CompleteCheckOut()
		}

		m.confirm = nil
	}

	return m, cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		// The refresh keeps running behind the form so a reset still fires.
		if _, ok := msg.(tickMsg); ok {
			return m.handleTick()
		}

		return m.handleConfirm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.checkIn):
			m.tracker.CheckIn()

		case key.Matches(msg, defaultKeymap.startBreak):
			m.tracker.StartBreak()

		case key.Matches(msg, defaultKeymap.stopBreak):
			m.tracker.StopBreak()

		case key.Matches(msg, defaultKeymap.checkOut):
			m.openConfirm()

			if m.confirm != nil {
				return m, m.confirm.Init()
			}

		case key.Matches(msg, defaultKeymap.quit):
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}
