// commutrace estimates commute CO₂ emissions and keeps a local history
// of past calculations.
package main

import (
	"os"

	"github.com/commutrace/commutrace/internal/cli"
	"github.com/commutrace/commutrace/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to the exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
