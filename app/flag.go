package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	checkInFlag = &cli.StringFlag{
		Name:    "check-in",
		Aliases: []string{"i"},
		Usage:   "Set today's check-in time (HH:MM). An empty value clears it",
	}

	checkOutFlag = &cli.StringFlag{
		Name:    "check-out",
		Aliases: []string{"o"},
		Usage:   "Set today's check-out time (HH:MM). An empty value clears it",
	}

	breakFlag = &cli.StringSliceFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Replace today's breaks with HH:MM-HH:MM ranges. Omit the end for the single ongoing break",
	}

	clearCheckInFlag = &cli.BoolFlag{
		Name:  "clear-check-in",
		Usage: "Clear the recorded check-in time",
	}

	clearCheckOutFlag = &cli.BoolFlag{
		Name:  "clear-check-out",
		Usage: "Clear the recorded check-out time",
	}

	clearBreaksFlag = &cli.BoolFlag{
		Name:  "clear-breaks",
		Usage: "Remove all recorded breaks",
	}

	ramadanFlag = &cli.StringFlag{
		Name:  "ramadan",
		Usage: "Enable or disable the reduced daily target: 'on' or 'off'",
	}

	themeFlag = &cli.StringFlag{
		Name:  "theme",
		Usage: "Set the colour theme: 'light' or 'dark'",
	}
)
