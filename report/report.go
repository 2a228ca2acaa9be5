package report

import (
	"os"

	"github.com/pterm/pterm"
)

func Saved(msg string) {
	pterm.Success.Println(msg)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
