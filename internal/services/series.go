package services

import (
	"okane/internal/core"
)

// DefaultMarkerThreshold flags transactions big enough to mark on a chart.
const DefaultMarkerThreshold int64 = 200000

// SeriesPoint is one day of a daily balance series.
type SeriesPoint struct {
	Date    core.Date
	Balance int64
}

// Marker is a large transaction pinned to the balance it left behind, for
// chart annotation.
type Marker struct {
	Transaction core.Transaction
	Balance     int64
}

// DailySeries samples the balance step function once per day from from
// through to, inclusive. Unlike the timeline it includes days without
// transactions, which is what a chart needs.
func DailySeries(ledger core.Ledger, from, to core.Date) []SeriesPoint {
	if from.After(to) {
		return nil
	}
	tl := BuildTimeline(ledger)
	var series []SeriesPoint
	for d := from; !d.After(to); d = d.AddDays(1) {
		series = append(series, SeriesPoint{Date: d, Balance: tl.BalanceAt(d)})
	}
	return series
}

// LargeMarkers returns the transactions within [from, to] whose amount meets
// threshold, each paired with the balance at its date.
func LargeMarkers(ledger core.Ledger, from, to core.Date, threshold int64) []Marker {
	tl := BuildTimeline(ledger)
	var markers []Marker
	for _, tx := range ledger.Transactions {
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		if tx.Amount.Yen >= threshold {
			markers = append(markers, Marker{Transaction: tx, Balance: tl.BalanceAt(tx.Date)})
		}
	}
	return markers
}
