// Package ledger implements the pure financial aggregation core: period
// filtering, derived balances, billing cycles, budget consumption,
// scheduled-expense projection and month comparisons. It performs no I/O
// and takes all inputs explicitly, which keeps every function
// deterministic and directly testable.
package ledger

import (
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// Filter selects transactions along optional dimensions. The zero value
// matches everything; an unset dimension never excludes a row.
type Filter struct {
	From      time.Time // inclusive; zero means unbounded
	To        time.Time // inclusive; zero means unbounded
	Type      string
	Category  string
	MemberID  string
	AccountID string
}

// Matches reports whether tx passes every set dimension of f.
func (f Filter) Matches(tx *domain.Transaction) bool {
	if !f.From.IsZero() && tx.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.Date.After(f.To) {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.MemberID != "" && tx.MemberID != f.MemberID {
		return false
	}
	if f.AccountID != "" && tx.AccountID != f.AccountID {
		return false
	}
	return true
}

// Apply returns the transactions matching f, preserving input order.
func Apply(txs []domain.Transaction, f Filter) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for i := range txs {
		if f.Matches(&txs[i]) {
			out = append(out, txs[i])
		}
	}
	return out
}

// MonthRange returns the inclusive [first, last] day bounds of a calendar
// month, normalised to UTC midnight.
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
