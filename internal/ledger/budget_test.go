package ledger_test

import (
	"testing"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/ledger"
)

func TestBudgetStatus_HalfConsumed(t *testing.T) {
	b := &domain.Budget{Category: "Alimentación", Year: 2025, Month: 3, Limit: 1500}
	txs := []domain.Transaction{
		tx("a1", domain.TxExpense, "Alimentación", 300, day(2025, time.March, 5)),
		tx("a1", domain.TxExpense, "Alimentación", 450, day(2025, time.March, 18)),
		tx("a1", domain.TxExpense, "Transporte", 200, day(2025, time.March, 6)),   // other category
		tx("a1", domain.TxExpense, "Alimentación", 80, day(2025, time.April, 1)),  // other month
		tx("a1", domain.TxIncome, "Alimentación", 100, day(2025, time.March, 10)), // income ignored
	}

	s := ledger.BudgetStatus(b, txs)
	if s.Spent != 750 {
		t.Errorf("expected spent 750, got %v", s.Spent)
	}
	if s.Remaining != 750 {
		t.Errorf("expected remaining 750, got %v", s.Remaining)
	}
	if s.ProgressPercent != 50 {
		t.Errorf("expected progress 50%%, got %v", s.ProgressPercent)
	}
	if s.Tier != domain.BudgetOnTrack {
		t.Errorf("expected tier on_track at exactly 50%%, got %s", s.Tier)
	}
}

func TestBudgetStatus_ZeroLimit(t *testing.T) {
	b := &domain.Budget{Category: "Vivienda", Year: 2025, Month: 3, Limit: 0}
	txs := []domain.Transaction{
		tx("a1", domain.TxExpense, "Vivienda", 900, day(2025, time.March, 5)),
	}

	s := ledger.BudgetStatus(b, txs)
	if s.ProgressPercent != 0 {
		t.Errorf("zero limit must report 0%% progress, got %v", s.ProgressPercent)
	}
	if s.Spent != 900 {
		t.Errorf("expected spent 900, got %v", s.Spent)
	}
}

func TestBudgetStatus_Tiers(t *testing.T) {
	cases := []struct {
		name  string
		spent float64
		tier  string
	}{
		{"under half", 400, domain.BudgetOnTrack},
		{"just over half", 501, domain.BudgetWarning},
		{"at eighty-five", 850, domain.BudgetWarning},
		{"over eighty-five", 851, domain.BudgetOver},
		{"overspent", 1200, domain.BudgetOver},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &domain.Budget{Category: "Servicios", Year: 2025, Month: 6, Limit: 1000}
			txs := []domain.Transaction{
				tx("a1", domain.TxExpense, "Servicios", tc.spent, day(2025, time.June, 10)),
			}
			s := ledger.BudgetStatus(b, txs)
			if s.Tier != tc.tier {
				t.Errorf("spent=%v: expected tier %s, got %s", tc.spent, tc.tier, s.Tier)
			}
		})
	}
}

func TestTrackBudgets_PreservesOrder(t *testing.T) {
	budgets := []domain.Budget{
		{Category: "Vivienda", Year: 2025, Month: 3, Limit: 1000},
		{Category: "Transporte", Year: 2025, Month: 3, Limit: 200},
	}

	out := ledger.TrackBudgets(budgets, nil)
	if len(out) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(out))
	}
	if out[0].Category != "Vivienda" || out[1].Category != "Transporte" {
		t.Error("expected statuses in input order")
	}
	if out[0].Remaining != 1000 {
		t.Errorf("no activity should leave the full limit, got remaining %v", out[0].Remaining)
	}
}
