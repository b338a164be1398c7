package realrate

import (
	"slices"
	"sort"
	"strings"
)

// Ledger is the chronological history of a single investment.
//
// In a Ledger events are always in chronological order and the first one is
// the only Deposit.
type Ledger struct {
	id     string
	events []Event
}

// ID returns the investment code.
func (l *Ledger) ID() string { return l.id }

// Events returns the events in chronological order.
func (l *Ledger) Events() []Event { return slices.Clone(l.events) }

// Deposit returns the initial principal deposit.
func (l *Ledger) Deposit() Event { return l.events[0] }

// NewLedger creates the ledger of a single investment from its events, in any
// order. Same-day events keep their relative order.
func NewLedger(id string, events []Event) (*Ledger, error) {
	l := &Ledger{id: id, events: slices.Clone(events)}
	l.stableSort()
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) stableSort() {
	sort.SliceStable(l.events, func(i, j int) bool {
		return l.events[i].Date.Before(l.events[j].Date)
	})
}

// validate checks that the ledger starts with exactly one deposit.
func (l *Ledger) validate() error {
	if len(l.events) == 0 || l.events[0].Kind != Deposit {
		var on Date
		if len(l.events) > 0 {
			on = l.events[0].Date
		}
		return &IntegrityError{ID: l.id, Date: on, Err: ErrMissingDeposit}
	}
	for _, e := range l.events[1:] {
		if e.Kind == Deposit {
			return &IntegrityError{ID: l.id, Date: e.Date, Err: ErrDuplicateDeposit}
		}
	}
	return nil
}

// BuildLedgers groups events by investment and returns one ledger per
// investment, sorted by code.
//
// Unrecognized events are ignored. An investment whose history violates the
// ledger assumptions is left out and reported as an *IntegrityError; the
// other investments are not affected.
func BuildLedgers(events []Event) ([]*Ledger, []*IntegrityError) {
	groups := make(map[string][]Event)
	for _, e := range events {
		if e.Kind == Unrecognized {
			continue
		}
		groups[e.ID] = append(groups[e.ID], e)
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, strings.Compare)

	var ledgers []*Ledger
	var violations []*IntegrityError
	for _, id := range ids {
		l, err := NewLedger(id, groups[id])
		if err != nil {
			violations = append(violations, err.(*IntegrityError))
			continue
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, violations
}
