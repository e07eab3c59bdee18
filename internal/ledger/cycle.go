package ledger

import (
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// CycleRange is one billing cycle of a credit account, inclusive on both
// ends. Consecutive cycles partition time: End + 1 day == next Start.
type CycleRange struct {
	Start time.Time
	End   time.Time
}

// clampDay fits a nominal closing day into the month that contains it.
// A closing day of 31 in April resolves to April 30.
func clampDay(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CurrentCycle resolves the billing cycle containing asOf for a card that
// closes on closingDay. If asOf falls after the closing day the cycle ends
// on the closing day of the following month; otherwise it ends this month.
func CurrentCycle(closingDay int, asOf time.Time) CycleRange {
	asOf = asOf.UTC()
	// Compare calendar days; a timestamp later on the closing day itself
	// still belongs to the cycle that closes that day.
	asOf = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	end := clampDay(asOf.Year(), asOf.Month(), closingDay)
	if asOf.After(end) {
		end = clampDay(asOf.Year(), asOf.Month()+1, closingDay)
	}
	// Start is the day after the previous closing.
	prev := clampDay(end.Year(), end.Month()-1, closingDay)
	return CycleRange{Start: prev.AddDate(0, 0, 1), End: end}
}

// NextCycle returns the cycle immediately after c for the same card.
func NextCycle(closingDay int, c CycleRange) CycleRange {
	end := clampDay(c.End.Year(), c.End.Month()+1, closingDay)
	return CycleRange{Start: c.End.AddDate(0, 0, 1), End: end}
}

// Contains reports whether t falls inside the cycle, bounds included.
func (c CycleRange) Contains(t time.Time) bool {
	return !t.Before(c.Start) && !t.After(c.End)
}

// CycleExpenses sums the expenses charged to accountID within the cycle.
// Payments toward the card (income legs) do not reduce the figure; it is
// the statement total, not the running balance.
func CycleExpenses(accountID string, c CycleRange, txs []domain.Transaction) float64 {
	var total float64
	for i := range txs {
		tx := &txs[i]
		if tx.AccountID != accountID || tx.Type != domain.TxExpense {
			continue
		}
		if c.Contains(tx.Date) {
			total += tx.Amount
		}
	}
	return total
}
