// Package core defines the ledger domain model: transactions, dates and
// amounts. Amounts are whole yen with no minor unit, so all arithmetic is
// plain integer arithmetic over Money.Yen.
package core

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

type (
	Kind string

	Date struct {
		time.Time
	}

	Money struct {
		Yen int64
	}

	// Transaction is a single dated ledger entry. The sign of its effect on
	// the balance is derived from Kind; Amount is always non-negative.
	Transaction struct {
		ID          string
		Date        Date
		Kind        Kind
		Amount      Money
		Description string
	}

	// Ledger is an initial balance plus transactions ordered by date,
	// same-date entries keeping their input order. It is never mutated
	// after construction; every derived view is computed.
	Ledger struct {
		InitialBalance int64
		Transactions   []Transaction
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidKind   = errors.New("invalid transaction kind")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyID       = errors.New("empty transaction id")
	ErrNotFound      = errors.New("transaction not found")
)

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Sign returns +1 for income and -1 for expense.
func (k Kind) Sign() int64 {
	if k == Income {
		return 1
	}
	return -1
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MonthKey returns the calendar month of the date as "YYYY-MM".
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date {
	return NewDate(d.Year(), int(d.Month()), 1)
}

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date {
	return NewDate(d.Year(), int(d.Month())+1, 0)
}

// AddDays shifts the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// AddMonths shifts the date by n calendar months, clamping to the last day
// of the target month when the day would overflow (Jan 31 + 1 -> Feb 28/29).
func (d Date) AddMonths(n int) Date {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return NewDate(first.Year(), int(first.Month()), day)
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (m Money) Validate() error {
	if m.Yen < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Signed returns the transaction's effect on the balance: positive for
// income, negative for expense.
func (t Transaction) Signed() int64 {
	return t.Kind.Sign() * t.Amount.Yen
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	return nil
}

// NewLedger builds a Ledger from an initial balance and transactions in
// input order. Transactions are stably sorted date-ascending, so same-date
// entries keep their relative input order.
func NewLedger(initialBalance int64, transactions []Transaction) Ledger {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return Ledger{InitialBalance: initialBalance, Transactions: sorted}
}
