package ledger

import (
	"fmt"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// PeriodKey formats a (year, month) pair as the canonical "YYYY-MM" key
// used in confirmed-period lists.
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// Confirmed reports whether the expense has already been confirmed for
// the period.
func Confirmed(e *domain.ScheduledExpense, year, month int) bool {
	key := PeriodKey(year, month)
	for _, p := range e.ConfirmedPeriods {
		if p == key {
			return true
		}
	}
	return false
}

// EffectiveAmount resolves what the expense would cost if confirmed for
// the period. Credit-card payoff expenses track the statement total of
// the billing cycle that closes within the period; everything else uses
// the static amount.
func EffectiveAmount(e *domain.ScheduledExpense, credit *domain.Account, year, month int, txs []domain.Transaction) float64 {
	if !e.IsCreditCardPayment() || credit == nil || credit.ClosingDay == 0 {
		return e.Amount
	}
	closing := clampDay(year, time.Month(month), credit.ClosingDay)
	cycle := CurrentCycle(credit.ClosingDay, closing)
	return CycleExpenses(credit.ID, cycle, txs)
}

// Project builds the period view for one expense.
func Project(e *domain.ScheduledExpense, credit *domain.Account, year, month int, txs []domain.Transaction) domain.ScheduledExpenseView {
	return domain.ScheduledExpenseView{
		ID:              e.ID,
		Description:     e.Description,
		Category:        e.Category,
		DueDay:          e.DueDay,
		AccountID:       e.AccountID,
		MemberID:        e.MemberID,
		Automatic:       e.Automatic,
		CreditCard:      e.IsCreditCardPayment(),
		EffectiveAmount: EffectiveAmount(e, credit, year, month, txs),
		Confirmed:       Confirmed(e, year, month),
	}
}

// ProjectAll builds the period view for every expense. accounts maps
// account id to account, used to resolve credit-card cycle totals.
func ProjectAll(expenses []domain.ScheduledExpense, accounts map[string]*domain.Account, year, month int, txs []domain.Transaction) []domain.ScheduledExpenseView {
	out := make([]domain.ScheduledExpenseView, 0, len(expenses))
	for i := range expenses {
		e := &expenses[i]
		var credit *domain.Account
		if e.CreditAccountID != "" {
			credit = accounts[e.CreditAccountID]
		}
		out = append(out, Project(e, credit, year, month, txs))
	}
	return out
}

// DueDate resolves the expense's due date within a month, clamping the
// nominal day to the month's length.
func DueDate(e *domain.ScheduledExpense, year, month int) time.Time {
	return clampDay(year, time.Month(month), e.DueDay)
}
