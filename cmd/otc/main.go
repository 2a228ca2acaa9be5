package main

import (
	"os"

	"github.com/otc-cli/otc/app"
	"github.com/otc-cli/otc/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
