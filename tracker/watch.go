package tracker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	padding  = 2
	maxWidth = 80
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type keymap struct {
	checkIn    key.Binding
	startBreak key.Binding
	stopBreak  key.Binding
	checkOut   key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	checkIn: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "check in"),
	),
	startBreak: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "start break"),
	),
	stopBreak: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resume work"),
	),
	checkOut: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "check out"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the live dashboard. The one-second tick only recomputes derived
// display values; session mutations happen in key handlers, and the checkout
// confirmation runs as an embedded form so only one prompt can be open.
type Model struct {
	tracker   *Tracker
	progress  progress.Model
	help      help.Model
	confirm   *huh.Form
	confirmed bool
}

// NewModel assembles the dashboard over a loaded tracker.
func NewModel(t *Tracker) *Model {
	return &Model{
		tracker:  t,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}
}

// Run blocks until the dashboard exits.
func (m *Model) Run() error {
	defer RemoveStatusFile()

	_, err := tea.NewProgram(m).Run()

	return err
}

func (m *Model) Init() tea.Cmd {
	return tick()
}
