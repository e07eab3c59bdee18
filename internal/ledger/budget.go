package ledger

import "github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"

// BudgetStatus derives consumption for one budget from the month's
// expenses in its category. A zero limit always reports 0% progress.
func BudgetStatus(b *domain.Budget, txs []domain.Transaction) domain.BudgetStatus {
	first, last := MonthRange(b.Year, b.Month)
	spent := 0.0
	f := Filter{From: first, To: last, Type: domain.TxExpense, Category: b.Category}
	for i := range txs {
		if f.Matches(&txs[i]) {
			spent += txs[i].Amount
		}
	}
	progress := 0.0
	if b.Limit > 0 {
		progress = spent / b.Limit * 100
	}
	return domain.BudgetStatus{
		Category:        b.Category,
		Limit:           b.Limit,
		Spent:           spent,
		Remaining:       b.Limit - spent,
		ProgressPercent: progress,
		Tier:            budgetTier(progress),
	}
}

// TrackBudgets derives the status of every budget, preserving order.
func TrackBudgets(budgets []domain.Budget, txs []domain.Transaction) []domain.BudgetStatus {
	out := make([]domain.BudgetStatus, 0, len(budgets))
	for i := range budgets {
		out = append(out, BudgetStatus(&budgets[i], txs))
	}
	return out
}

func budgetTier(progress float64) string {
	switch {
	case progress > 85:
		return domain.BudgetOver
	case progress > 50:
		return domain.BudgetWarning
	default:
		return domain.BudgetOnTrack
	}
}
