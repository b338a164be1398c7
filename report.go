package realrate

import (
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultCurrency is used when Options.Currency is empty.
const DefaultCurrency = "USD"

// Options configures Compute.
type Options struct {
	// AsOf is the date the measurement stops for investments not yet repaid.
	// It is required, callers usually default it to Today().
	AsOf Date
	// Currency of all amounts.
	Currency string
	// ReverseChronological tells that rows are newest first, so that same-day
	// rows are processed in reverse file order.
	ReverseChronological bool
	// Workers is the number of investments integrated concurrently, values
	// below 2 integrate sequentially.
	Workers int
	// Hide selects unrecognized rows that are only counted, not listed.
	Hide func(Row) bool
	// Logger receives per investment warnings, nil discards them.
	Logger logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}

// Report is the effective rate of every investment of an account history.
type Report struct {
	AsOf        Date
	Currency    string
	Investments []InvestmentReport // sorted by code.
	Summary     Summary
	Unhandled   []Row             // rows with an unrecognized transaction type, chronological.
	Hidden      int               // unrecognized rows not listed in Unhandled.
	Skipped     []*IntegrityError // investments left out of the report.
	Future      int               // rows dated after AsOf, ignored.
}

// Compute computes the effective rate of every investment in rows, measured
// as of opts.AsOf.
//
// A malformed row aborts the computation with a *ParseError. Investments
// whose history is not consistent are reported in Report.Skipped and do not
// prevent the others from being computed.
func Compute(rows []Row, opts Options) (*Report, error) {
	if opts.AsOf.IsZero() {
		return nil, ErrNoAsOf
	}
	log := opts.logger()
	cur := opts.currency()

	if opts.ReverseChronological {
		rows = slices.Clone(rows)
		slices.Reverse(rows)
	}
	events, err := NewEvents(rows, cur)
	if err != nil {
		return nil, err
	}

	r := &Report{AsOf: opts.AsOf, Currency: cur}
	kept := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Date.After(opts.AsOf) {
			r.Future++
			log.WithFields(logrus.Fields{"line": e.Row.Line, "date": e.Date}).Debug("skip row after as-of date")
			continue
		}
		if e.Kind == Unrecognized {
			if opts.Hide != nil && opts.Hide(*e.Row) {
				r.Hidden++
			} else {
				r.Unhandled = append(r.Unhandled, *e.Row)
			}
			continue
		}
		kept = append(kept, e)
	}

	ledgers, violations := BuildLedgers(kept)
	r.Skipped = append(r.Skipped, violations...)

	reports, errs := integrate(ledgers, opts.AsOf, opts.Workers)
	for i, l := range ledgers {
		if errs[i] != nil {
			var ie *IntegrityError
			if !errors.As(errs[i], &ie) {
				return nil, errs[i]
			}
			r.Skipped = append(r.Skipped, ie)
			continue
		}
		log.WithFields(logrus.Fields{
			"investment":  l.ID(),
			"exposure":    reports[i].Exposure,
			"rate":        reports[i].Rate,
			"provisional": reports[i].Provisional,
		}).Debug("integrated")
		r.Investments = append(r.Investments, reports[i])
	}
	slices.SortStableFunc(r.Skipped, func(a, b *IntegrityError) int { return strings.Compare(a.ID, b.ID) })
	for _, v := range r.Skipped {
		log.WithField("investment", v.ID).Warnf("skipped: %v", v.Err)
	}

	r.Summary = NewSummary(cur, r.Investments)
	return r, nil
}

// integrate integrates every ledger. Each ledger is owned by a single worker
// and writes to its own slot.
func integrate(ledgers []*Ledger, cutoff Date, workers int) ([]InvestmentReport, []error) {
	reports := make([]InvestmentReport, len(ledgers))
	errs := make([]error, len(ledgers))
	one := func(i int) {
		x, err := Integrate(ledgers[i], cutoff)
		if err != nil {
			errs[i] = err
			return
		}
		reports[i] = NewInvestmentReport(ledgers[i].ID(), x, cutoff)
	}

	if workers < 2 {
		for i := range ledgers {
			one(i)
		}
		return reports, errs
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range ledgers {
		g.Go(func() error {
			one(i)
			return nil
		})
	}
	_ = g.Wait() // errors are per slot.
	return reports, errs
}

// MarshalJSON writes the report with a stable field order.
func (r *Report) MarshalJSON() ([]byte, error) {
	type skipped struct {
		Code  string `json:"code"`
		Date  string `json:"date,omitempty"`
		Error string `json:"error"`
	}
	sk := make([]skipped, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		sk = append(sk, skipped{Code: s.ID, Date: s.Date.String(), Error: s.Err.Error()})
	}
	investments := r.Investments
	if investments == nil {
		investments = []InvestmentReport{}
	}

	var w jsonObjectWriter
	w.Append("asOf", r.AsOf)
	w.Append("currency", r.Currency)
	w.Append("investments", investments)
	w.Append("summary", r.Summary)
	w.Optional("unhandled", r.Unhandled)
	w.Optional("hidden", r.Hidden)
	if len(sk) > 0 {
		w.Append("skipped", sk)
	}
	w.Optional("future", r.Future)
	return w.MarshalJSON()
}
