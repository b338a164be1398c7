// Command rr computes the effective interest rate of the investments of a
// Percent.com account history.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/realrate/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Completion exits when the shell asks for candidates.
	cmd.Completion().Complete("rr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
