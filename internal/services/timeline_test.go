package services

import (
	"testing"

	"okane/internal/core"
)

// sampleLedger is the worked example used across the engine tests: one large
// expense in January, one large income in February.
func sampleLedger() core.Ledger {
	return core.NewLedger(1000000, []core.Transaction{
		{ID: "rent", Date: core.NewDate(2026, 1, 10), Kind: core.Expense, Amount: core.Money{Yen: 200000}, Description: "家賃"},
		{ID: "salary", Date: core.NewDate(2026, 2, 5), Kind: core.Income, Amount: core.Money{Yen: 300000}, Description: "給料"},
	})
}

func TestBuildTimeline(t *testing.T) {
	tl := BuildTimeline(sampleLedger())
	points := tl.Points()
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if points[0].Balance != 800000 {
		t.Fatalf("first point balance = %d", points[0].Balance)
	}
	if points[1].Balance != 1100000 {
		t.Fatalf("second point balance = %d", points[1].Balance)
	}
}

func TestBuildTimelineMergesSameDay(t *testing.T) {
	l := core.NewLedger(1000, []core.Transaction{
		{ID: "a", Date: core.NewDate(2026, 3, 1), Kind: core.Expense, Amount: core.Money{Yen: 400}},
		{ID: "b", Date: core.NewDate(2026, 3, 1), Kind: core.Income, Amount: core.Money{Yen: 100}},
	})
	tl := BuildTimeline(l)
	points := tl.Points()
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1 merged point", len(points))
	}
	if points[0].Balance != 700 {
		t.Fatalf("merged balance = %d, want 700", points[0].Balance)
	}
	if len(points[0].Transactions) != 2 || points[0].Transactions[0].ID != "a" {
		t.Fatalf("merged transactions lost input order: %+v", points[0].Transactions)
	}
}

func TestBalanceAt(t *testing.T) {
	tl := BuildTimeline(sampleLedger())

	cases := []struct {
		date core.Date
		want int64
	}{
		{core.NewDate(2025, 12, 31), 1000000}, // before everything
		{core.NewDate(2026, 1, 9), 1000000},
		{core.NewDate(2026, 1, 10), 800000}, // on the transaction date
		{core.NewDate(2026, 1, 31), 800000}, // step function, no interpolation
		{core.NewDate(2026, 2, 5), 1100000},
		{core.NewDate(2027, 1, 1), 1100000},
	}
	for i, tc := range cases {
		if got := tl.BalanceAt(tc.date); got != tc.want {
			t.Fatalf("case %d: BalanceAt(%s) = %d, want %d", i, tc.date, got, tc.want)
		}
	}
}

// Full-ledger conservation: the balance at the last transaction date equals
// the initial balance plus the sum of all signed amounts.
func TestBalanceConservation(t *testing.T) {
	l := sampleLedger()
	tl := BuildTimeline(l)

	sum := l.InitialBalance
	var last core.Date
	for _, tx := range l.Transactions {
		sum += tx.Signed()
		last = tx.Date
	}
	if got := tl.BalanceAt(last); got != sum {
		t.Fatalf("BalanceAt(last) = %d, want %d", got, sum)
	}
	if got := tl.FinalBalance(); got != sum {
		t.Fatalf("FinalBalance = %d, want %d", got, sum)
	}
}

func TestTimelineEmptyLedger(t *testing.T) {
	tl := BuildTimeline(core.NewLedger(-250, nil))
	if got := tl.BalanceAt(core.NewDate(2026, 6, 1)); got != -250 {
		t.Fatalf("BalanceAt = %d, want initial balance", got)
	}
	if got := tl.FinalBalance(); got != -250 {
		t.Fatalf("FinalBalance = %d", got)
	}
	if len(tl.Points()) != 0 {
		t.Fatalf("expected no points")
	}
}

// Repeated builds over the same ledger must agree point for point.
func TestBuildTimelineIdempotent(t *testing.T) {
	l := sampleLedger()
	a := BuildTimeline(l)
	b := BuildTimeline(l)
	if len(a.Points()) != len(b.Points()) {
		t.Fatalf("point counts differ")
	}
	for i := range a.Points() {
		pa, pb := a.Points()[i], b.Points()[i]
		if !pa.Date.Equal(pb.Date) || pa.Balance != pb.Balance {
			t.Fatalf("point %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}
