package ledger_test

import (
	"testing"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/ledger"
)

func TestPeriodKey_Format(t *testing.T) {
	if got := ledger.PeriodKey(2025, 3); got != "2025-03" {
		t.Errorf("expected 2025-03, got %s", got)
	}
	if got := ledger.PeriodKey(2025, 12); got != "2025-12" {
		t.Errorf("expected 2025-12, got %s", got)
	}
}

func TestConfirmed_MembershipOnly(t *testing.T) {
	e := &domain.ScheduledExpense{ConfirmedPeriods: []string{"2025-01", "2025-03"}}

	if !ledger.Confirmed(e, 2025, 3) {
		t.Error("expected 2025-03 to be confirmed")
	}
	if ledger.Confirmed(e, 2025, 2) {
		t.Error("expected 2025-02 to be unconfirmed")
	}
}

func TestEffectiveAmount_StaticExpense(t *testing.T) {
	e := &domain.ScheduledExpense{Amount: 350}

	if got := ledger.EffectiveAmount(e, nil, 2025, 3, nil); got != 350 {
		t.Errorf("expected static amount 350, got %v", got)
	}
}

func TestEffectiveAmount_CreditCardTracksCycle(t *testing.T) {
	credit := &domain.Account{ID: "c1", Type: domain.AccountCredit, ClosingDay: 25}
	e := &domain.ScheduledExpense{
		Description:     "Pago Visa",
		AccountID:       "a1",
		CreditAccountID: "c1",
	}
	txs := []domain.Transaction{
		tx("c1", domain.TxExpense, "Alimentación", 120, day(2025, time.February, 28)),
		tx("c1", domain.TxExpense, "Transporte", 80, day(2025, time.March, 20)),
		tx("c1", domain.TxExpense, "Vivienda", 999, day(2025, time.March, 26)), // next cycle
	}

	// March projection uses the cycle closing Mar 25: Feb 26 .. Mar 25.
	if got := ledger.EffectiveAmount(e, credit, 2025, 3, txs); got != 200 {
		t.Errorf("expected cycle total 200, got %v", got)
	}
}

func TestEffectiveAmount_CreditLinkWithoutAccountFallsBack(t *testing.T) {
	e := &domain.ScheduledExpense{Amount: 500, CreditAccountID: "c-gone"}

	if got := ledger.EffectiveAmount(e, nil, 2025, 3, nil); got != 500 {
		t.Errorf("expected fallback to static amount, got %v", got)
	}
}

func TestProjectAll_ResolvesLinkedAccounts(t *testing.T) {
	credit := domain.Account{ID: "c1", Type: domain.AccountCredit, ClosingDay: 10}
	expenses := []domain.ScheduledExpense{
		{ID: "s1", Description: "Alquiler", Amount: 1200, DueDay: 1, AccountID: "a1",
			ConfirmedPeriods: []string{"2025-03"}},
		{ID: "s2", Description: "Pago Visa", DueDay: 15, AccountID: "a1",
			Automatic: true, CreditAccountID: "c1"},
	}
	txs := []domain.Transaction{
		tx("c1", domain.TxExpense, "Alimentación", 60, day(2025, time.March, 5)),
	}
	accounts := map[string]*domain.Account{"c1": &credit}

	views := ledger.ProjectAll(expenses, accounts, 2025, 3, txs)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if !views[0].Confirmed || views[0].EffectiveAmount != 1200 {
		t.Errorf("static expense: confirmed=%v amount=%v", views[0].Confirmed, views[0].EffectiveAmount)
	}
	if views[1].Confirmed {
		t.Error("credit expense should be unconfirmed for 2025-03")
	}
	if !views[1].CreditCard || !views[1].Automatic {
		t.Error("credit expense should carry creditCard and automatic flags")
	}
	if views[1].EffectiveAmount != 60 {
		t.Errorf("expected live cycle amount 60, got %v", views[1].EffectiveAmount)
	}
}

func TestDueDate_ClampsToMonthEnd(t *testing.T) {
	e := &domain.ScheduledExpense{DueDay: 31}

	got := ledger.DueDate(e, 2025, 2)
	if !got.Equal(day(2025, time.February, 28)) {
		t.Errorf("expected Feb 28, got %v", got)
	}
}
