package realrate

import (
	"github.com/shopspring/decimal"
)

// DaysPerYear is the day-count convention used to annualize rates.
const DaysPerYear = 365

// EffectiveRate returns the annual rate that, applied to the outstanding
// principal over time, yields the interest net of fees:
//
//	rate = 365 × (interest − fees) / exposure
//
// The rate of a zero exposure is zero.
func EffectiveRate(interest, fees Money, exposure decimal.Decimal) Rate {
	if !exposure.IsPositive() {
		return Rate{value: decimal.Zero}
	}
	net := interest.Sub(fees).Decimal()
	return Rate{value: net.Mul(decimal.NewFromInt(DaysPerYear)).Div(exposure)}
}

// IsProvisional reports whether a rate measured on cutoff understates the
// rate actually being paid: interest keeps accruing after the last payment
// and has not been received yet. A rate is final only when the cutoff is the
// day of the last interest payment.
func IsProvisional(lastInterestPayment, cutoff Date) bool {
	return lastInterestPayment.IsZero() || lastInterestPayment != cutoff
}

// InvestmentReport is the effective rate of a single investment.
type InvestmentReport struct {
	ID                  string
	Principal           Money // initial principal.
	Interest            Money
	Fees                Money
	Balance             Money           // signed residual, not clamped.
	Exposure            decimal.Decimal // currency-days.
	Rate                Rate
	Provisional         bool
	PayoffDate          Date
	AsOf                Date
	LastInterestPayment Date
}

// NewInvestmentReport computes the rate of an integrated ledger measured on cutoff.
func NewInvestmentReport(id string, x Exposure, cutoff Date) InvestmentReport {
	return InvestmentReport{
		ID:                  id,
		Principal:           x.Principal,
		Interest:            x.Interest,
		Fees:                x.Fees,
		Balance:             x.Balance,
		Exposure:            x.Value,
		Rate:                EffectiveRate(x.Interest, x.Fees, x.Value),
		Provisional:         IsProvisional(x.LastInterestPayment, cutoff),
		PayoffDate:          x.PayoffDate,
		AsOf:                x.AsOf,
		LastInterestPayment: x.LastInterestPayment,
	}
}

// MarshalJSON writes the report with a stable field order.
func (r InvestmentReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("code", r.ID)
	w.Append("principal", r.Principal)
	w.Append("interest", r.Interest)
	w.Append("fees", r.Fees)
	w.Append("balance", r.Balance)
	w.Append("exposure", r.Exposure)
	w.Append("rate", r.Rate)
	w.Append("provisional", r.Provisional)
	w.Optional("payoffDate", r.PayoffDate)
	w.Append("asOf", r.AsOf)
	w.Optional("lastInterestPayment", r.LastInterestPayment)
	return w.MarshalJSON()
}
