// Package realrate computes the effective (real) interest rate of each
// investment of an account transaction history.
//
// The key insight is that the total interest paid is the rate times the
// integral over time of the outstanding principal. Therefore:
//
//	effective rate = 365 × (interest − fees) / Σ(principal × days)
//
// The computation goes one way:
//   - Event Model: raw rows are classified into dated Events (deposit,
//     interest, fee, principal repayment), or Unrecognized.
//   - Timeline: events are grouped by investment code and sorted
//     chronologically into a Ledger, which must start with its only Deposit.
//   - Exposure: each ledger is integrated up to the earlier of its payoff date
//     and the as-of date.
//   - Rate: interest, fees and exposure give the annual effective rate, which
//     is provisional unless the as-of date is the day of the last interest payment.
//   - Summary: rates are aggregated into a mean weighted by initial principal.
//
// The computation is a pure function of the rows and the as-of date: nothing
// reads the clock, the caller decides what "today" is.
//
// This package serves as the foundational logic for the `rr` command-line tool.
package realrate
