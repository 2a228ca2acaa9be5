package tracker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/otc-cli/otc/internal/session"
)

var (
	baseStyle   = lipgloss.NewStyle().Padding(1, 2)
	mainStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	workStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0DB43")).Bold(true)
	breakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C492B1")).Bold(true)
	labelColumn = lipgloss.NewStyle().Width(20)
)

func (m *Model) stateBadge(s session.State) string {
	label := "[" + s.Label() + "]"

	switch s {
	case session.CheckedIn:
		return workStyle.Render(label)
	case session.OnBreak:
		return breakStyle.Render(label)
	case session.Completed:
		return doneStyle.Render(label)
	default:
		return hintStyle.Render(label)
	}
}

func (m *Model) row(label, value string) string {
	return labelColumn.Render(label) + value + "\n"
}

func (m *Model) dashboardView() string {
	var s strings.Builder

	status := m.tracker.Status()

	s.WriteString(m.stateBadge(m.tracker.State()))

	if status.CheckIn != "-" {
		s.WriteString(hintStyle.Render(" since " + status.CheckIn))
	}

	s.WriteString("\n\n")
	s.WriteString(mainStyle.Render(status.Worked))
	s.WriteString(hintStyle.Render(" worked"))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(status.Progress))
	s.WriteString("\n\n")

	s.WriteString(m.row("Remaining", status.Remaining))
	s.WriteString(m.row("Daily target", status.Target))
	s.WriteString(m.row("Est. checkout", status.EstimatedCheckout))
	s.WriteString(m.row("Break time", status.BreakTotal))

	for _, row := range status.Rows {
		s.WriteString(
			hintStyle.Render(
				row.Label+": "+row.Start+" - "+row.End+" ("+row.Duration+")",
			) + "\n",
		)
	}

	s.WriteString(m.watchHelpView())

	return s.String()
}

func (m *Model) watchHelpView() string {
	var bindings []key.Binding

	switch m.tracker.State() {
	case session.NotStarted:
		bindings = []key.Binding{defaultKeymap.checkIn, defaultKeymap.quit}
	case session.CheckedIn:
		bindings = []key.Binding{
			defaultKeymap.startBreak,
			defaultKeymap.checkOut,
			defaultKeymap.quit,
		}
	case session.OnBreak:
		bindings = []key.Binding{
			defaultKeymap.stopBreak,
			defaultKeymap.checkOut,
			defaultKeymap.quit,
		}
	default:
		bindings = []key.Binding{defaultKeymap.quit}
	}

	return "\n" + m.help.ShortHelpView(bindings)
}

func (m *Model) View() string {
	view := m.dashboardView()

	if m.confirm != nil {
		view += "\n\n" + m.confirm.View()
	}

	return baseStyle.Render(view)
}
