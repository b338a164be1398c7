package realrate

import (
	"github.com/shopspring/decimal"
)

// Summary aggregates the investment reports of a portfolio.
type Summary struct {
	Count          int
	Principal      Money // total initial principal.
	Interest       Money
	Fees           Money
	Balance        Money
	MeanRate       Rate // weighted by initial principal.
	Empty          bool // true when there is no principal to weight rates with, MeanRate is then 0.
	AnyProvisional bool
}

// NewSummary sums the reports and computes the mean effective rate weighted
// by initial principal, so that it reflects the capital deployed rather than
// the capital remaining.
func NewSummary(currency string, reports []InvestmentReport) Summary {
	zero := M(0, currency)
	s := Summary{
		Count:     len(reports),
		Principal: zero,
		Interest:  zero,
		Fees:      zero,
		Balance:   zero,
	}
	weighted := decimal.Zero
	for _, r := range reports {
		s.Principal = s.Principal.Add(r.Principal)
		s.Interest = s.Interest.Add(r.Interest)
		s.Fees = s.Fees.Add(r.Fees)
		s.Balance = s.Balance.Add(r.Balance)
		weighted = weighted.Add(r.Rate.Decimal().Mul(r.Principal.Decimal()))
		s.AnyProvisional = s.AnyProvisional || r.Provisional
	}
	if s.Principal.IsZero() {
		s.Empty = true
		s.MeanRate = Rate{value: decimal.Zero}
		return s
	}
	s.MeanRate = Rate{value: weighted.Div(s.Principal.Decimal())}
	return s
}

// MarshalJSON writes the summary with a stable field order.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("count", s.Count)
	w.Append("principal", s.Principal)
	w.Append("interest", s.Interest)
	w.Append("fees", s.Fees)
	w.Append("balance", s.Balance)
	w.Append("meanRate", s.MeanRate)
	w.Optional("empty", s.Empty)
	w.Append("anyProvisional", s.AnyProvisional)
	return w.MarshalJSON()
}
