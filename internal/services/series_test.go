package services

import (
	"testing"

	"okane/internal/core"
)

func TestDailySeries(t *testing.T) {
	series := DailySeries(sampleLedger(), core.NewDate(2026, 1, 8), core.NewDate(2026, 1, 12))
	if len(series) != 5 {
		t.Fatalf("series length = %d, want 5 days", len(series))
	}
	want := []int64{1000000, 1000000, 800000, 800000, 800000}
	for i, p := range series {
		if p.Balance != want[i] {
			t.Fatalf("day %s balance = %d, want %d", p.Date, p.Balance, want[i])
		}
	}
}

func TestDailySeriesEmptyRange(t *testing.T) {
	if got := DailySeries(sampleLedger(), core.NewDate(2026, 2, 1), core.NewDate(2026, 1, 1)); got != nil {
		t.Fatalf("expected nil for inverted range, got %+v", got)
	}
}

func TestLargeMarkers(t *testing.T) {
	markers := LargeMarkers(sampleLedger(), core.NewDate(2026, 1, 1), core.NewDate(2026, 12, 31), DefaultMarkerThreshold)
	if len(markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(markers))
	}
	if markers[0].Transaction.ID != "rent" || markers[0].Balance != 800000 {
		t.Fatalf("first marker = %+v", markers[0])
	}
	if markers[1].Transaction.ID != "salary" || markers[1].Balance != 1100000 {
		t.Fatalf("second marker = %+v", markers[1])
	}

	// a higher threshold drops the rent
	markers = LargeMarkers(sampleLedger(), core.NewDate(2026, 1, 1), core.NewDate(2026, 12, 31), 250000)
	if len(markers) != 1 || markers[0].Transaction.ID != "salary" {
		t.Fatalf("thresholded markers = %+v", markers)
	}
}
