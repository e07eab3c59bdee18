package service

import (
	"context"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/ledger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

var summaryTracer = otel.Tracer("service/summary")

const recentLimit = 10

// ============================================================
// Dashboard summary
// ============================================================

// GetSummary builds the dashboard view for a month: current and previous
// month stats with deltas, derived balances, budget consumption, projected
// scheduled expenses and the most recent transactions. Store reads fan out
// concurrently; the aggregation itself is pure.
func (s *FinanceService) GetSummary(ctx context.Context, familyID string, year, month int) (*domain.DashboardSummary, error) {
	ctx, span := summaryTracer.Start(ctx, "FinanceService.GetSummary")
	defer span.End()
	span.SetAttributes(
		attribute.Int("summary.year", year),
		attribute.Int("summary.month", month),
	)

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("get_summary", time.Since(start)) }()

	if month < 1 || month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "month must be between 1 and 12"}
	}

	var (
		txs      []domain.Transaction
		accounts []domain.Account
		budgets  []domain.Budget
		expenses []domain.ScheduledExpense
		members  []domain.Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.store.ListMembers(gctx, familyID)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.loadTransactions(gctx, familyID)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = s.store.ListAccounts(gctx, familyID)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.store.ListBudgets(gctx, familyID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListScheduledExpenses(gctx, familyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prevYear, prevMonth := ledger.PreviousMonth(year, month)
	current := ledger.MonthStats(year, month, txs)
	previous := ledger.MonthStats(prevYear, prevMonth, txs)

	byID := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		byID[accounts[i].ID] = &accounts[i]
	}

	recent := txs
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return &domain.DashboardSummary{
		MemberCount: len(members),
		Current:     current,
		Previous:    previous,
		Comparison:  ledger.CompareMonths(current, previous),
		Balances:    ledger.BalancesByType(accounts, txs),
		Budgets:     ledger.TrackBudgets(budgets, txs),
		Scheduled:   ledger.ProjectAll(expenses, byID, year, month, txs),
		Recent:      recent,
	}, nil
}

// GetComparison returns only the month-over-month trend, for clients that
// do not need the full dashboard payload.
func (s *FinanceService) GetComparison(ctx context.Context, familyID string, year, month int) (*domain.Comparison, error) {
	ctx, span := summaryTracer.Start(ctx, "FinanceService.GetComparison")
	defer span.End()

	if month < 1 || month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "month must be between 1 and 12"}
	}

	txs, err := s.loadTransactions(ctx, familyID)
	if err != nil {
		return nil, err
	}
	prevYear, prevMonth := ledger.PreviousMonth(year, month)
	cmp := ledger.CompareMonths(
		ledger.MonthStats(year, month, txs),
		ledger.MonthStats(prevYear, prevMonth, txs),
	)
	return &cmp, nil
}
