package services

import (
	"fmt"
	"sort"

	"okane/internal/core"
)

// DefaultKeepMonths is how many recent months of detail compression keeps.
const DefaultKeepMonths = 3

// Compress folds every calendar month that ended more than keepMonths months
// before refDate's month into at most two synthetic transactions, one income
// total and one expense total dated the first of that month. Months from the
// cutoff onward are copied verbatim, input order intact.
//
// The synthetic totals carry the whole month's net effect, so the compressed
// ledger's balance equals the original's at every date on or after the
// cutoff. Synthetic transactions are themselves valid and re-summarize to
// the same totals, which makes compression idempotent for a fixed
// (keepMonths, refDate).
func Compress(ledger core.Ledger, keepMonths int, refDate core.Date) (core.Ledger, error) {
	if keepMonths < 0 {
		return core.Ledger{}, &core.InvalidArgumentError{Name: "keepMonths", Value: keepMonths}
	}

	cutoff := refDate.StartOfMonth().AddMonths(-keepMonths)

	type totals struct {
		income  int64
		expense int64
	}
	monthly := make(map[string]*totals)
	var kept []core.Transaction
	for _, tx := range ledger.Transactions {
		if !tx.Date.Before(cutoff) {
			kept = append(kept, tx)
			continue
		}
		m := tx.Date.MonthKey()
		if monthly[m] == nil {
			monthly[m] = &totals{}
		}
		if tx.Kind == core.Income {
			monthly[m].income += tx.Amount.Yen
		} else {
			monthly[m].expense += tx.Amount.Yen
		}
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	compressed := make([]core.Transaction, 0, 2*len(months)+len(kept))
	for _, m := range months {
		first, err := core.ParseDate(m + "-01")
		if err != nil {
			return core.Ledger{}, fmt.Errorf("month key %q: %w", m, err)
		}
		if s := monthly[m]; s.income > 0 {
			compressed = append(compressed, core.Transaction{
				ID:          fmt.Sprintf("compressed-%s-income", m),
				Date:        first,
				Kind:        core.Income,
				Amount:      core.Money{Yen: s.income},
				Description: fmt.Sprintf("%s収入合計（圧縮）", m),
			})
		}
		if s := monthly[m]; s.expense > 0 {
			compressed = append(compressed, core.Transaction{
				ID:          fmt.Sprintf("compressed-%s-expense", m),
				Date:        first,
				Kind:        core.Expense,
				Amount:      core.Money{Yen: s.expense},
				Description: fmt.Sprintf("%s支出合計（圧縮）", m),
			})
		}
	}
	compressed = append(compressed, kept...)

	return core.NewLedger(ledger.InitialBalance, compressed), nil
}
