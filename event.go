package realrate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// EventKind is the effect of a cash-flow event on an investment.
type EventKind int

const (
	// Unrecognized marks a row whose transaction type is not part of the
	// investment model. It is reported and never computed.
	Unrecognized EventKind = iota
	// Deposit is the initial principal invested.
	Deposit
	// InterestPayment is interest paid to the investor.
	InterestPayment
	// Fee is a fee charged to the investor, it reduces the effective rate.
	Fee
	// PrincipalRepayment is a (possibly partial) return of principal.
	PrincipalRepayment
)

func (k EventKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case InterestPayment:
		return "interest"
	case Fee:
		return "fee"
	case PrincipalRepayment:
		return "principal"
	default:
		return "unrecognized"
	}
}

// ParseEventKind maps a transaction type label to its kind.
// Any unknown label is Unrecognized.
func ParseEventKind(label string) EventKind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "investment":
		return Deposit
	case "interest":
		return InterestPayment
	case "fee":
		return Fee
	case "principal":
		return PrincipalRepayment
	default:
		return Unrecognized
	}
}

// Event is a single dated cash-flow of an investment.
//
// Amount is always a non-negative magnitude; its effect is given by Kind.
type Event struct {
	ID     string // investment code
	Date   Date
	Kind   EventKind
	Amount Money
	Row    *Row // source row, always set for Unrecognized events.
}

// NewEvent classifies a raw row into an Event.
//
// Unrecognized transaction types are not an error, the returned event has
// Kind Unrecognized and keeps the row. Malformed dates, amounts or codes are
// reported as a *ParseError, so is an amount whose sign does not match the
// transaction type.
func NewEvent(row Row, currency string) (Event, error) {
	on, err := ParseISODate(row.Date)
	if err != nil {
		return Event{}, &ParseError{Line: row.Line, Field: "date", Value: row.Date, Err: err}
	}
	amount, err := ParseAmount(row.Amount)
	if err != nil {
		return Event{}, &ParseError{Line: row.Line, Field: "amount", Value: row.Amount, Err: err}
	}

	e := Event{
		Date:   on,
		Kind:   ParseEventKind(row.Type),
		Amount: M(amount.Abs(), currency),
		Row:    &row,
	}
	if e.Kind == Unrecognized {
		return e, nil
	}
	if err := checkSign(e.Kind, amount); err != nil {
		return Event{}, &ParseError{Line: row.Line, Field: "amount", Value: row.Amount, Err: err}
	}

	e.ID = strings.TrimSpace(row.Code)
	if e.ID == "" {
		e.ID, err = CodeFromDescription(row.Description)
		if err != nil {
			return Event{}, &ParseError{Line: row.Line, Field: "description", Value: row.Description, Err: err}
		}
	}
	if e.ID == "" {
		return Event{}, &ParseError{Line: row.Line, Field: "description", Value: row.Description, Err: fmt.Errorf("no investment code for %s row", e.Kind)}
	}
	return e, nil
}

// ErrAmountSign is returned when the sign of an amount does not match its kind.
var ErrAmountSign = errors.New("wrong sign for transaction type")

// checkSign validates the sign the history uses for each kind: money leaving
// the account (investments and fees) is negative or zero, money coming back
// (interest and principal) is positive or zero.
func checkSign(kind EventKind, amount decimal.Decimal) error {
	switch kind {
	case Deposit, Fee:
		if amount.IsPositive() {
			return fmt.Errorf("%s must not be positive: %w", kind, ErrAmountSign)
		}
	case InterestPayment, PrincipalRepayment:
		if amount.IsNegative() {
			return fmt.Errorf("%s must not be negative: %w", kind, ErrAmountSign)
		}
	}
	return nil
}

var amountReplacer = strings.NewReplacer("$", "", ",", "", " ", "", "\u00a0", "")

// ParseAmount parses a currency formatted amount like "$1,000.00", "-25.5" or
// "(12.00)". The amount must be a whole number of cents.
func ParseAmount(s string) (decimal.Decimal, error) {
	str := amountReplacer.Replace(strings.TrimSpace(s))
	neg := false
	if strings.HasPrefix(str, "(") && strings.HasSuffix(str, ")") {
		neg = true
		str = str[1 : len(str)-1]
	}
	if str == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a decimal number: %w", err)
	}
	if !d.Equal(d.Truncate(2)) {
		return decimal.Zero, errors.New("amounts must be given as whole cents")
	}
	if neg {
		if d.IsNegative() {
			return decimal.Zero, errors.New("double negative amount")
		}
		d = d.Neg()
	}
	return d, nil
}

var codeRE = regexp.MustCompile(`\(([^()]*)\)`)

// CodeFromDescription extracts the investment code from a transaction
// description: the only parenthesised text, "Interest (WSF1 2023-9)" gives
// "WSF1 2023-9". It returns "" when there is none.
func CodeFromDescription(description string) (string, error) {
	matches := codeRE.FindAllStringSubmatch(description, -1)
	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return strings.TrimSpace(matches[0][1]), nil
	default:
		return "", fmt.Errorf("more than one code in description")
	}
}
