package realrate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is an annual rate expressed as a decimal fraction (0.1 for 10%).
type Rate struct {
	value decimal.Decimal
}

// R creates a Rate from a fraction.
func R[T float64 | int | int64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

func (r Rate) Decimal() decimal.Decimal { return r.value }
func (r Rate) Equal(s Rate) bool        { return r.value.Equal(s.value) }
func (r Rate) IsZero() bool             { return r.value.IsZero() }

// Percent returns the rate in percent.
func (r Rate) Percent() Percent { return Percent(r.value.Shift(2).InexactFloat64()) }

// String returns the rate as a percentage with one decimal, "9.1%".
func (r Rate) String() string { return fmt.Sprintf("%.1f%%", r.Percent()) }

func (r Rate) MarshalJSON() ([]byte, error)     { return r.value.MarshalJSON() }
func (r *Rate) UnmarshalJSON(data []byte) error { return r.value.UnmarshalJSON(data) }

// Percent is a display value, 10 means 10%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
