package services

import (
	"okane/internal/core"
)

// ScanDanger walks the timeline forward from refDate and reports every
// transaction date whose balance sits at or below threshold, oldest first.
// Dates before refDate are never reported: a past breach already happened
// and is not a danger.
func ScanDanger(ledger core.Ledger, threshold int64, refDate core.Date) []core.DangerPoint {
	tl := BuildTimeline(ledger)
	var points []core.DangerPoint
	for _, p := range tl.Points() {
		if p.Date.Before(refDate) {
			continue
		}
		if p.Balance <= threshold {
			points = append(points, core.DangerPoint{
				Date:      p.Date,
				Balance:   p.Balance,
				Shortfall: threshold - p.Balance,
			})
		}
	}
	return points
}
