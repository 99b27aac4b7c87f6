package services

import (
	"okane/internal/core"
)

// DefaultCheckHorizonMonths extends an affordability check through the end
// of the calendar month this many months after the check date.
const DefaultCheckHorizonMonths = 1

// Check answers whether an extra expense of amount on date is affordable.
//
// The hypothetical expense is taken to occur after all real transactions of
// that day, so BalanceBefore includes the day's actual activity. The status
// is total over all inputs:
//
//   - INSUFFICIENT: the balance cannot cover the expense on the day.
//   - TIGHT: it can, but some transaction date within the horizon (the end
//     of the month horizonMonths after date's month) would dip below zero
//     with the reduced cushion.
//   - OK: the balance stays non-negative through the horizon.
//
// The ledger is never modified; the withdrawal is simulated by shifting the
// trajectory down by amount.
func Check(ledger core.Ledger, amount int64, date core.Date, horizonMonths int) (core.CheckResult, error) {
	if amount < 0 {
		return core.CheckResult{}, &core.InvalidArgumentError{Name: "amount", Value: amount}
	}
	if horizonMonths < 0 {
		return core.CheckResult{}, &core.InvalidArgumentError{Name: "horizonMonths", Value: horizonMonths}
	}

	tl := BuildTimeline(ledger)
	horizon := date.AddMonths(horizonMonths).EndOfMonth()

	result := core.CheckResult{
		Date:          date,
		Amount:        amount,
		BalanceBefore: tl.BalanceAt(date),
	}
	result.BalanceAfter = result.BalanceBefore - amount

	for _, p := range tl.Points() {
		if !p.Date.After(date) || p.Date.After(horizon) {
			continue
		}
		for _, tx := range p.Transactions {
			if tx.Kind == core.Expense {
				result.SubsequentObligations = append(result.SubsequentObligations, tx)
			}
		}
	}

	switch {
	case result.BalanceAfter < 0:
		result.Status = core.StatusInsufficient
	case dipsBelowZero(tl, amount, date, horizon):
		result.Status = core.StatusTight
	default:
		result.Status = core.StatusOK
	}
	return result, nil
}

// dipsBelowZero reports whether any checkpoint in (date, horizon] would go
// negative once the trajectory is lowered by amount.
func dipsBelowZero(tl Timeline, amount int64, date, horizon core.Date) bool {
	for _, p := range tl.Points() {
		if !p.Date.After(date) {
			continue
		}
		if p.Date.After(horizon) {
			return false
		}
		if p.Balance-amount < 0 {
			return true
		}
	}
	return false
}
