package services

import (
	"errors"
	"testing"

	"okane/internal/core"
)

func TestCheckStatuses(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		date       core.Date
		wantStatus core.CheckStatus
		wantBefore int64
		wantAfter  int64
	}{
		{
			// the january rent would dip to -100000 with the
			// reduced cushion, so the check is TIGHT, not OK
			name:       "large expense before rent is tight",
			amount:     900000,
			date:       core.NewDate(2026, 1, 5),
			wantStatus: core.StatusTight,
			wantBefore: 1000000,
			wantAfter:  100000,
		},
		{
			name:       "more than the balance is insufficient",
			amount:     1500000,
			date:       core.NewDate(2026, 1, 5),
			wantStatus: core.StatusInsufficient,
			wantBefore: 1000000,
			wantAfter:  -500000,
		},
		{
			name:       "small expense is ok",
			amount:     100000,
			date:       core.NewDate(2026, 1, 5),
			wantStatus: core.StatusOK,
			wantBefore: 1000000,
			wantAfter:  900000,
		},
		{
			name:       "after all obligations is ok",
			amount:     900000,
			date:       core.NewDate(2026, 2, 10),
			wantStatus: core.StatusOK,
			wantBefore: 1100000,
			wantAfter:  200000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Check(sampleLedger(), tt.amount, tt.date, DefaultCheckHorizonMonths)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.BalanceBefore != tt.wantBefore {
				t.Fatalf("balanceBefore = %d, want %d", got.BalanceBefore, tt.wantBefore)
			}
			if got.BalanceAfter != tt.wantAfter {
				t.Fatalf("balanceAfter = %d, want %d", got.BalanceAfter, tt.wantAfter)
			}
		})
	}
}

// The hypothetical expense occurs after all real transactions of the same
// day, so BalanceBefore on a transaction date includes that day's activity.
func TestCheckSameDayRule(t *testing.T) {
	got, err := Check(sampleLedger(), 100000, core.NewDate(2026, 1, 10), DefaultCheckHorizonMonths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BalanceBefore != 800000 {
		t.Fatalf("balanceBefore = %d, want 800000 (after same-day rent)", got.BalanceBefore)
	}
	if got.BalanceAfter != 700000 {
		t.Fatalf("balanceAfter = %d", got.BalanceAfter)
	}
}

func TestCheckSubsequentObligations(t *testing.T) {
	l := core.NewLedger(1000000, []core.Transaction{
		{ID: "rent", Date: core.NewDate(2026, 1, 10), Kind: core.Expense, Amount: core.Money{Yen: 200000}},
		{ID: "salary", Date: core.NewDate(2026, 2, 5), Kind: core.Income, Amount: core.Money{Yen: 300000}},
		{ID: "tax", Date: core.NewDate(2026, 2, 20), Kind: core.Expense, Amount: core.Money{Yen: 50000}},
		{ID: "trip", Date: core.NewDate(2026, 5, 1), Kind: core.Expense, Amount: core.Money{Yen: 80000}},
	})
	got, err := Check(l, 10000, core.NewDate(2026, 1, 5), DefaultCheckHorizonMonths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// expenses only, within the horizon (end of february), date order;
	// the may trip is beyond the horizon and the salary is not an obligation
	if len(got.SubsequentObligations) != 2 {
		t.Fatalf("obligations = %+v, want rent and tax", got.SubsequentObligations)
	}
	if got.SubsequentObligations[0].ID != "rent" || got.SubsequentObligations[1].ID != "tax" {
		t.Fatalf("obligation order = %s, %s", got.SubsequentObligations[0].ID, got.SubsequentObligations[1].ID)
	}
}

func TestCheckHorizonConfigurable(t *testing.T) {
	l := core.NewLedger(500000, []core.Transaction{
		{ID: "far", Date: core.NewDate(2026, 6, 15), Kind: core.Expense, Amount: core.Money{Yen: 450000}},
	})
	date := core.NewDate(2026, 1, 5)

	// default horizon (through february) never sees the june expense
	got, err := Check(l, 100000, date, DefaultCheckHorizonMonths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != core.StatusOK {
		t.Fatalf("short horizon status = %s, want OK", got.Status)
	}

	// stretching the horizon to june exposes the dip
	got, err = Check(l, 100000, date, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != core.StatusTight {
		t.Fatalf("long horizon status = %s, want TIGHT", got.Status)
	}
}

func TestCheckDoesNotMutateLedger(t *testing.T) {
	l := sampleLedger()
	if _, err := Check(l, 900000, core.NewDate(2026, 1, 5), DefaultCheckHorizonMonths); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Transactions) != 2 {
		t.Fatalf("ledger gained transactions: %d", len(l.Transactions))
	}
	if got := BuildTimeline(l).FinalBalance(); got != 1100000 {
		t.Fatalf("ledger balance changed: %d", got)
	}
}

func TestCheckInvalidArguments(t *testing.T) {
	var argErr *core.InvalidArgumentError
	if _, err := Check(sampleLedger(), -1, core.NewDate(2026, 1, 5), 1); !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError for negative amount, got %v", err)
	}
	if _, err := Check(sampleLedger(), 1, core.NewDate(2026, 1, 5), -1); !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError for negative horizon, got %v", err)
	}
}
