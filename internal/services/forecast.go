package services

import (
	"okane/internal/core"
)

// DefaultLargeThreshold flags transactions worth calling out in a monthly
// forecast summary.
const DefaultLargeThreshold int64 = 100000

// Forecast projects the ledger's balance month by month: one entry per
// calendar month, starting with the month containing refDate, each evaluated
// at the end of its month. Transactions with amounts at or above large are
// listed per month in date-then-input order. A month without transactions
// still appears, carrying the balance forward.
func Forecast(ledger core.Ledger, refDate core.Date, months int, large int64) ([]core.ForecastEntry, error) {
	if months < 0 {
		return nil, &core.InvalidArgumentError{Name: "months", Value: months}
	}
	if large < 0 {
		return nil, &core.InvalidArgumentError{Name: "largeThreshold", Value: large}
	}

	tl := BuildTimeline(ledger)
	entries := make([]core.ForecastEntry, 0, months)
	for i := 0; i < months; i++ {
		end := refDate.AddMonths(i).EndOfMonth()
		entries = append(entries, core.ForecastEntry{
			Month:      end.MonthKey(),
			Date:       end,
			Balance:    tl.BalanceAt(end),
			LargeItems: largeItemsIn(ledger, end.MonthKey(), large),
		})
	}
	return entries, nil
}

// largeItemsIn picks the month's transactions meeting the threshold. The
// ledger is already date-then-input ordered, so a linear pass preserves the
// required listing order.
func largeItemsIn(ledger core.Ledger, monthKey string, large int64) []core.Transaction {
	var items []core.Transaction
	for _, tx := range ledger.Transactions {
		if tx.Date.MonthKey() == monthKey && tx.Amount.Yen >= large {
			items = append(items, tx)
		}
	}
	return items
}
