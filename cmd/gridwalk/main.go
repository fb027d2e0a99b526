// Command gridwalk runs the grid-walk search experiments.
//
// Usage:
//
//	gridwalk run -case 2
//	gridwalk run -case 3 -random -width 15 -height 10 -seed 7
//	gridwalk run -config experiment.yaml -animate -delay 100ms
//	gridwalk run -case 2 -metrics-addr :9090
//	gridwalk genmap -width 20 -height 12 -wall-prob 0.3 -out maze.txt
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a subcommand and returns the process exit code.
func run(args []string) int {
	if err := newApp().Dispatch(args); err != nil {
		fmt.Fprintf(os.Stderr, "gridwalk: %v\n", err)
		return 1
	}
	return 0
}

func newApp() *commander.Command {
	return &commander.Command{
		UsageLine: "gridwalk <command> [options]",
		Short:     "compare search algorithms on grid-walk puzzles",
		Subcommands: []*commander.Command{
			runCmd(),
			genmapCmd(),
		},
		Flag: *flag.NewFlagSet("gridwalk", flag.ExitOnError),
	}
}
