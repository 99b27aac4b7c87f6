package core

// TimelinePoint is the balance checkpoint for one distinct transaction date:
// the balance after every transaction of that day has been applied, plus the
// day's transactions in input order.
type TimelinePoint struct {
	Date         Date
	Balance      int64
	Transactions []Transaction
}

// ForecastEntry is one month of a balance forecast: the closing balance at
// the last day of the month (Date), plus the month's transactions at or
// above the large threshold.
type ForecastEntry struct {
	Month      string // "YYYY-MM"
	Date       Date
	Balance    int64
	LargeItems []Transaction
}

// CheckStatus classifies an affordability check.
type CheckStatus string

const (
	// StatusOK: the expense fits and the balance stays non-negative through
	// the checked horizon.
	StatusOK CheckStatus = "OK"
	// StatusTight: the expense fits today but would push some later point
	// within the horizon below zero.
	StatusTight CheckStatus = "TIGHT"
	// StatusInsufficient: the balance cannot cover the expense on the day.
	StatusInsufficient CheckStatus = "INSUFFICIENT"
)

// CheckResult is the outcome of an affordability check for a hypothetical
// expense of Amount on Date.
type CheckResult struct {
	Status        CheckStatus
	Date          Date
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	// SubsequentObligations are the actual expenses scheduled after Date
	// within the checked horizon, for display.
	SubsequentObligations []Transaction
}

// DangerPoint is a transaction date on which the balance sits at or below
// the safety threshold. Shortfall is threshold minus balance.
type DangerPoint struct {
	Date      Date
	Balance   int64
	Shortfall int64
}
