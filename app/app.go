// Package app defines the otc command-line application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/otc-cli/otc/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the otc app instance.
func Get() *cli.App {
	otcApp := &cli.App{
		Name: "otc",
		Usage: `
		otc tracks a single day of office attendance from the command line:
		check in when you arrive, record breaks, and check out when you leave.
		Worked and remaining time are derived against a configurable daily
		target.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "in",
				Usage:  "Check in and start today's session",
				Action: checkInAction,
			},
			{
				Name:   "break",
				Usage:  "Start a break",
				Action: startBreakAction,
			},
			{
				Name:   "resume",
				Usage:  "End the current break and get back to work",
				Action: stopBreakAction,
			},
			{
				Name:   "out",
				Usage:  "Check out and complete today's session",
				Action: checkOutAction,
			},
			{
				Name:   "status",
				Usage:  "Print today's attendance status",
				Action: statusAction,
			},
			{
				Name:   "watch",
				Usage:  "Open the live dashboard",
				Action: watchAction,
			},
			{
				Name:  "edit",
				Usage: "Correct today's check-in, check-out, or break times",
				Flags: []cli.Flag{
					checkInFlag,
					checkOutFlag,
					breakFlag,
					clearCheckInFlag,
					clearCheckOutFlag,
					clearBreaksFlag,
				},
				Action: editAction,
			},
			{
				Name:  "settings",
				Usage: "Show or change the persisted settings",
				Flags: []cli.Flag{
					ramadanFlag,
					themeFlag,
				},
				Action: settingsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Action: statusAction,
		Before: beforeAction,
	}

	return otcApp
}
