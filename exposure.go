package realrate

import (
	"github.com/shopspring/decimal"
)

// PayoffTolerance is the largest outstanding principal, in major units, for
// which an investment is considered repaid. A balance below its opposite is an
// over-repayment.
var PayoffTolerance = decimal.New(1, -2)

// Exposure is the result of integrating the outstanding principal of a ledger
// over time.
type Exposure struct {
	Value               decimal.Decimal // time-integral of the outstanding principal, in currency-days.
	Principal           Money           // initial principal.
	Balance             Money           // outstanding principal at the cutoff, signed residual.
	Interest            Money           // total interest paid up to the cutoff.
	Fees                Money           // total fees up to the cutoff.
	PayoffDate          Date            // date the principal was repaid, zero if still outstanding.
	AsOf                Date            // end of the measurement: the payoff date or the cutoff, whichever is earlier.
	LastInterestPayment Date            // zero if no interest has been paid.
}

// Integrate walks the ledger up to the cutoff date and accumulates the
// outstanding principal times the number of days it was outstanding.
//
// Accrual stops on the payoff date. Events after the cutoff are ignored. A
// cutoff before the deposit yields a zero exposure.
func Integrate(l *Ledger, cutoff Date) (Exposure, error) {
	if cutoff.IsZero() {
		return Exposure{}, ErrNoAsOf
	}
	deposit := l.Deposit()
	principal := deposit.Amount
	lastChange := deposit.Date // last time the principal changed.

	zero := M(0, principal.Currency())
	x := Exposure{
		Value:     decimal.Zero,
		Principal: principal,
		Interest:  zero,
		Fees:      zero,
	}

	for _, e := range l.events[1:] {
		if e.Date.After(cutoff) {
			break
		}
		switch e.Kind {
		case PrincipalRepayment:
			if x.PayoffDate.IsZero() {
				x.Value = x.Value.Add(principal.MulDays(lastChange.DaysUntil(e.Date)))
				lastChange = e.Date
			}
			principal = principal.Sub(e.Amount)
			if principal.Decimal().LessThan(PayoffTolerance.Neg()) {
				return Exposure{}, &IntegrityError{ID: l.id, Date: e.Date, Err: ErrOverRepayment}
			}
			if x.PayoffDate.IsZero() && principal.Decimal().LessThanOrEqual(PayoffTolerance) {
				x.PayoffDate = e.Date
			}
		case InterestPayment:
			x.Interest = x.Interest.Add(e.Amount)
			x.LastInterestPayment = e.Date
		case Fee:
			x.Fees = x.Fees.Add(e.Amount)
		case Deposit:
			return Exposure{}, &IntegrityError{ID: l.id, Date: e.Date, Err: ErrDuplicateDeposit}
		}
	}

	// the open interval up to the cutoff.
	if x.PayoffDate.IsZero() {
		if days := lastChange.DaysUntil(cutoff); days > 0 {
			x.Value = x.Value.Add(principal.MulDays(days))
		}
	}
	x.Balance = principal
	x.AsOf = MinDate(x.PayoffDate, cutoff)
	return x, nil
}
