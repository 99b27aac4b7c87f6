package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"okane/internal/core"
)

// TransactionUpdate holds the fields EditTransaction may change. Nil fields
// are left as they are.
type TransactionUpdate struct {
	Date        *core.Date
	Kind        *core.Kind
	Amount      *int64
	Description *string
}

// AddTransaction returns a new ledger with one more transaction, re-sorted
// by date. The new entry gets a freshly minted id, which is also returned.
func AddTransaction(ledger core.Ledger, date core.Date, kind core.Kind, amount int64, description string) (core.Ledger, core.Transaction, error) {
	tx := core.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Kind:        kind,
		Amount:      core.Money{Yen: amount},
		Description: description,
	}
	if err := tx.Validate(); err != nil {
		return core.Ledger{}, core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	txs := append(append([]core.Transaction{}, ledger.Transactions...), tx)
	return core.NewLedger(ledger.InitialBalance, txs), tx, nil
}

// EditTransaction returns a new ledger with the identified transaction's
// fields updated. Returns core.ErrNotFound if id does not exist.
func EditTransaction(ledger core.Ledger, id string, update TransactionUpdate) (core.Ledger, core.Transaction, error) {
	txs := append([]core.Transaction{}, ledger.Transactions...)
	for i, tx := range txs {
		if tx.ID != id {
			continue
		}
		if update.Date != nil {
			tx.Date = *update.Date
		}
		if update.Kind != nil {
			tx.Kind = *update.Kind
		}
		if update.Amount != nil {
			tx.Amount = core.Money{Yen: *update.Amount}
		}
		if update.Description != nil {
			tx.Description = *update.Description
		}
		if err := tx.Validate(); err != nil {
			return core.Ledger{}, core.Transaction{}, fmt.Errorf("edit transaction %s: %w", id, err)
		}
		txs[i] = tx
		return core.NewLedger(ledger.InitialBalance, txs), tx, nil
	}
	return core.Ledger{}, core.Transaction{}, fmt.Errorf("edit transaction %s: %w", id, core.ErrNotFound)
}

// DeleteTransaction returns a new ledger without the identified transaction.
// Returns core.ErrNotFound if id does not exist.
func DeleteTransaction(ledger core.Ledger, id string) (core.Ledger, core.Transaction, error) {
	for i, tx := range ledger.Transactions {
		if tx.ID != id {
			continue
		}
		txs := append([]core.Transaction{}, ledger.Transactions[:i]...)
		txs = append(txs, ledger.Transactions[i+1:]...)
		return core.NewLedger(ledger.InitialBalance, txs), tx, nil
	}
	return core.Ledger{}, core.Transaction{}, fmt.Errorf("delete transaction %s: %w", id, core.ErrNotFound)
}

// ListTransactions returns the ledger's transactions, optionally narrowed to
// one calendar month ("YYYY-MM"). An empty month means everything.
func ListTransactions(ledger core.Ledger, month string) []core.Transaction {
	if month == "" {
		return ledger.Transactions
	}
	var txs []core.Transaction
	for _, tx := range ledger.Transactions {
		if tx.Date.MonthKey() == month {
			txs = append(txs, tx)
		}
	}
	return txs
}

// SearchFilter narrows a transaction search. Zero-valued fields match
// everything.
type SearchFilter struct {
	Keyword   string
	Kind      core.Kind
	From      core.Date
	To        core.Date
	MinAmount *int64
	MaxAmount *int64
}

func (f SearchFilter) matches(tx core.Transaction) bool {
	if f.Kind != "" && tx.Kind != f.Kind {
		return false
	}
	if !f.From.IsZero() && tx.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.Date.After(f.To) {
		return false
	}
	if f.MinAmount != nil && tx.Amount.Yen < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && tx.Amount.Yen > *f.MaxAmount {
		return false
	}
	if f.Keyword != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Keyword)) {
		return false
	}
	return true
}

// SearchTransactions returns the matching transactions newest first.
func SearchTransactions(ledger core.Ledger, filter SearchFilter) []core.Transaction {
	var txs []core.Transaction
	for _, tx := range ledger.Transactions {
		if filter.matches(tx) {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[j].Date.Before(txs[i].Date)
	})
	return txs
}

// LedgerSummary aggregates a ledger's totals for display.
type LedgerSummary struct {
	Count        int
	IncomeTotal  int64
	ExpenseTotal int64
	Net          int64
}

// Summarize totals a ledger's income and expense sides. Net is income minus
// expense, without the initial balance.
func Summarize(ledger core.Ledger) LedgerSummary {
	s := LedgerSummary{Count: len(ledger.Transactions)}
	for _, tx := range ledger.Transactions {
		if tx.Kind == core.Income {
			s.IncomeTotal += tx.Amount.Yen
		} else {
			s.ExpenseTotal += tx.Amount.Yen
		}
	}
	s.Net = s.IncomeTotal - s.ExpenseTotal
	return s
}
