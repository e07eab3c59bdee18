package ledger

import "github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"

// MonthStats aggregates income, expenses and the per-category expense
// distribution for one calendar month. Categories without activity are
// absent from the map.
func MonthStats(year, month int, txs []domain.Transaction) domain.MonthStats {
	first, last := MonthRange(year, month)
	stats := domain.MonthStats{
		Year:       year,
		Month:      month,
		ByCategory: make(map[string]float64),
	}
	f := Filter{From: first, To: last}
	for i := range txs {
		tx := &txs[i]
		if !f.Matches(tx) {
			continue
		}
		switch tx.Type {
		case domain.TxIncome:
			stats.Income += tx.Amount
		case domain.TxExpense:
			stats.Expenses += tx.Amount
			stats.ByCategory[tx.Category] += tx.Amount
		}
	}
	stats.Net = stats.Income - stats.Expenses
	return stats
}

// PreviousMonth returns the (year, month) pair immediately before the
// given one, rolling over year boundaries.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// Trend compares a current figure against the previous month's. A jump
// from 0 to a positive value has no finite percent change; Infinite marks
// it. Both-zero reports 0%.
func Trend(current, previous float64) domain.TrendDelta {
	d := domain.TrendDelta{
		Current:  current,
		Previous: previous,
		Delta:    current - previous,
	}
	switch {
	case previous == 0 && current > 0:
		d.Infinite = true
	case previous != 0:
		d.Percent = (current - previous) / previous * 100
	}
	return d
}

// CompareMonths builds the month-over-month comparison for the headline
// figures.
func CompareMonths(current, previous domain.MonthStats) domain.Comparison {
	return domain.Comparison{
		Income:   Trend(current.Income, previous.Income),
		Expenses: Trend(current.Expenses, previous.Expenses),
		Net:      Trend(current.Net, previous.Net),
	}
}
