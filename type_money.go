package realrate

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a numeric value expressed in major units.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
//
// A negative value that rounds to zero keeps its sign ("-$0.00") so that
// rounding residuals remain visible.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	s := cur.Formatter().Format(minor)
	if minor == 0 && m.value.IsNegative() && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// Whole returns the string representation of the money rounded to major units, "$1,000".
func (m Money) Whole() string {
	cur := m.currency()
	f := cur.Formatter()
	f.Fraction = 0
	whole := m.value.Round(0).IntPart()
	s := f.Format(whole)
	if whole == 0 && m.value.IsNegative() && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }

// MulDays returns the value times a number of days, in currency-days.
func (m Money) MulDays(days int) decimal.Decimal {
	return m.value.Mul(decimal.NewFromInt(int64(days)))
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the money as an exact decimal string amount with its currency.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}

// GoString helps test failure messages.
func (m Money) GoString() string { return fmt.Sprintf("M(%s, %q)", m.value, m.cur) }
