// Command wrokout is a terminal workout logger.
package main

import (
	"fmt"
	"os"

	"github.com/balkashynov/wrokout/internal/commands"
)

// set by -ldflags at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
