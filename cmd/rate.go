package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/realrate"
	"github.com/etnz/realrate/config"
	"github.com/etnz/realrate/logger"
	"github.com/etnz/realrate/percent"
	"github.com/etnz/realrate/renderer"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	cfg       config.Config
	date      string
	currency  string
	json      bool
	raw       bool
	transfers bool
	workers   int
	verbose   bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "compute the effective interest rate of each investment" }
func (*rateCmd) Usage() string {
	return `rr rate [-d <date>] [-json] [-raw] [-transfers] [-workers <n>] [-v] <history.csv>

  Compute the effective interest rate of each investment in a Percent.com
  transaction history, as of today or the date given with -d.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "as-of date of the report, defaults to today. See 'rr topic rate' for supported formats.")
	f.StringVar(&c.currency, "currency", c.cfg.Currency, "currency of the history amounts")
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
	f.BoolVar(&c.raw, "raw", false, "print markdown without terminal styling")
	f.BoolVar(&c.transfers, "transfers", c.cfg.ShowTransfers, "list ACH and wire transfers among unhandled rows")
	f.IntVar(&c.workers, "workers", c.cfg.Workers, "number of investments integrated concurrently")
	f.BoolVar(&c.verbose, "v", c.cfg.Verbose, "log details on stderr")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a history file is required")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	asOf, err := c.asOf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := c.run(os.Stdout, os.Stderr, f.Arg(0), asOf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// asOf returns the as-of date, today is decided here and only here.
func (c *rateCmd) asOf() (realrate.Date, error) {
	if c.date == "" {
		return realrate.Today(), nil
	}
	on, err := realrate.ParseDate(c.date)
	if err != nil {
		return realrate.Date{}, fmt.Errorf("parsing as-of date: %w", err)
	}
	return on, nil
}

// run computes the report of the history file at path and writes it to w.
func (c *rateCmd) run(w, logw io.Writer, path string, asOf realrate.Date) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open history: %w", err)
	}
	defer file.Close()

	rows, err := percent.Decode(file)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	opts := realrate.Options{
		AsOf:                 asOf,
		Currency:             c.currency,
		ReverseChronological: true,
		Workers:              c.workers,
		Logger:               logger.New(logw, c.verbose).WithField("file", path),
	}
	if !c.transfers {
		opts.Hide = percent.IsTransferRow
	}

	report, err := realrate.Compute(rows, opts)
	var perr *realrate.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err != nil {
		return err
	}

	if c.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printMarkdown(w, renderer.ReportMarkdown(report), c.raw)
	return nil
}
