package realrate

import (
	"errors"
	"fmt"
)

// Ledger integrity violations. They are reported per investment, wrapped in
// an IntegrityError.
var (
	ErrMissingDeposit   = errors.New("earliest event is not the initial deposit")
	ErrDuplicateDeposit = errors.New("principal deposited more than once")
	ErrOverRepayment    = errors.New("principal repaid exceeds the outstanding balance")
)

// ErrNoAsOf is returned when a computation is requested without a cutoff date.
var ErrNoAsOf = errors.New("as-of date is required")

// ParseError reports an input value that cannot be safely interpreted.
type ParseError struct {
	Line  int    // 1-based line in the source file, 0 if unknown.
	Field string // name of the column.
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IntegrityError reports an investment whose history violates the ledger
// assumptions. The investment is excluded from the report.
type IntegrityError struct {
	ID   string // investment code
	Date Date   // date of the offending event, zero if not applicable.
	Err  error
}

func (e *IntegrityError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("investment %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("investment %q on %s: %v", e.ID, e.Date, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }
