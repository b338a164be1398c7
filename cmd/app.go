// Package cmd implements the rr command line application.
package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/realrate/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	cfg := config.Load()
	c.Register(&rateCmd{cfg: cfg}, "rates")
	c.Register(&topicCmd{}, "documentation")
}

// Names of the registered subcommands, for shell completion.
var Names = []string{"rate", "topic", "help", "flags", "commands"}

// printMarkdown writes markdown to w, styled for the terminal unless raw.
func printMarkdown(w io.Writer, md string, raw bool) {
	if raw {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// styling is cosmetic, fall back to plain markdown.
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
