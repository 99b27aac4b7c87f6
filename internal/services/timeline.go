// Package services implements the balance analysis engine.
//
// Every function here is a pure transformation from a loaded ledger and
// explicit parameters to a derived value. Nothing reads the wall clock and
// nothing mutates the ledger, so the same inputs always produce the same
// outputs and concurrent callers can share one ledger freely.
package services

import (
	"sort"

	"okane/internal/core"
)

// Timeline is the ordered sequence of balance checkpoints derived from a
// ledger: one point per distinct transaction date, holding the balance after
// all of that day's transactions.
type Timeline struct {
	initialBalance int64
	points         []core.TimelinePoint
}

// BuildTimeline folds the ledger's signed amounts into a Timeline. Same-date
// transactions merge into a single point whose balance reflects the whole
// day's net effect, applied in input order.
func BuildTimeline(ledger core.Ledger) Timeline {
	tl := Timeline{initialBalance: ledger.InitialBalance}
	balance := ledger.InitialBalance
	for _, tx := range ledger.Transactions {
		balance += tx.Signed()
		n := len(tl.points)
		if n > 0 && tl.points[n-1].Date.Equal(tx.Date) {
			tl.points[n-1].Balance = balance
			tl.points[n-1].Transactions = append(tl.points[n-1].Transactions, tx)
			continue
		}
		tl.points = append(tl.points, core.TimelinePoint{
			Date:         tx.Date,
			Balance:      balance,
			Transactions: []core.Transaction{tx},
		})
	}
	return tl
}

// BalanceAt returns the balance after the last point dated on or before d.
// The balance is a step function: before the first transaction it is the
// ledger's initial balance, and it only changes on transaction dates.
func (tl Timeline) BalanceAt(d core.Date) int64 {
	// first point strictly after d
	i := sort.Search(len(tl.points), func(i int) bool {
		return tl.points[i].Date.After(d)
	})
	if i == 0 {
		return tl.initialBalance
	}
	return tl.points[i-1].Balance
}

// Points returns the timeline's checkpoints in date order.
func (tl Timeline) Points() []core.TimelinePoint {
	return tl.points
}

// InitialBalance returns the balance before the first transaction.
func (tl Timeline) InitialBalance() int64 {
	return tl.initialBalance
}

// FinalBalance returns the balance after the last transaction, or the
// initial balance for an empty ledger.
func (tl Timeline) FinalBalance() int64 {
	if len(tl.points) == 0 {
		return tl.initialBalance
	}
	return tl.points[len(tl.points)-1].Balance
}
