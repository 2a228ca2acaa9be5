package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// Dialog is the prompt collaborator: a yes/no confirmation and a notice with
// acknowledgment. At most one prompt is outstanding at a time.
type Dialog interface {
	Confirm(message, title string) (bool, error)
	Notify(message, title string)
}

// TerminalDialog prompts on the controlling terminal.
type TerminalDialog struct{}

func (TerminalDialog) Confirm(message, title string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(message).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

func (TerminalDialog) Notify(message, title string) {
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  title,
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}

	pterm.Warning.Println(message)
}
