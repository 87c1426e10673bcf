package main

import (
	"errors"
	"os"

	"github.com/elevont/prttl/internal/cli"
)

// Set via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrCheckFailed) {
			os.Exit(65)
		}
		os.Exit(1)
	}
}
