package service

import (
	"context"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/ledger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var budgetTracer = otel.Tracer("service/budgets")

// ============================================================
// Budgets
// ============================================================

// UpsertBudget creates or replaces the budget for its (category, year,
// month) tuple. Repeating the call with the same tuple is idempotent.
func (s *FinanceService) UpsertBudget(ctx context.Context, familyID string, req *domain.BudgetRequest) (*domain.Budget, error) {
	ctx, span := budgetTracer.Start(ctx, "FinanceService.UpsertBudget")
	defer span.End()

	if req.Category == "" {
		return nil, &domain.ErrValidation{Field: "category", Message: "category is required"}
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "month must be between 1 and 12"}
	}
	if req.Year < 2000 {
		return nil, &domain.ErrValidation{Field: "year", Message: "year is out of range"}
	}
	if req.Limit < 0 {
		return nil, &domain.ErrValidation{Field: "limit", Message: "limit cannot be negative"}
	}

	b := &domain.Budget{
		ID:       uuid.NewString(),
		FamilyID: familyID,
		Category: req.Category,
		Year:     req.Year,
		Month:    req.Month,
		Limit:    req.Limit,
	}
	saved, err := s.store.UpsertBudget(ctx, familyID, b)
	if err != nil {
		return nil, err
	}

	s.logger.Info("budget upserted",
		zap.String("family_id", familyID),
		zap.String("category", saved.Category),
		zap.Int("year", saved.Year),
		zap.Int("month", saved.Month),
	)
	return saved, nil
}

func (s *FinanceService) ListBudgets(ctx context.Context, familyID string, year, month int) ([]domain.Budget, error) {
	ctx, span := budgetTracer.Start(ctx, "FinanceService.ListBudgets")
	defer span.End()

	return s.store.ListBudgets(ctx, familyID, year, month)
}

func (s *FinanceService) DeleteBudget(ctx context.Context, familyID, budgetID string) error {
	ctx, span := budgetTracer.Start(ctx, "FinanceService.DeleteBudget")
	defer span.End()

	return s.store.DeleteBudget(ctx, familyID, budgetID)
}

// TrackBudgets derives consumption for every budget of the month.
func (s *FinanceService) TrackBudgets(ctx context.Context, familyID string, year, month int) ([]domain.BudgetStatus, error) {
	ctx, span := budgetTracer.Start(ctx, "FinanceService.TrackBudgets")
	defer span.End()

	budgets, err := s.store.ListBudgets(ctx, familyID, year, month)
	if err != nil {
		return nil, err
	}
	txs, err := s.loadTransactions(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return ledger.TrackBudgets(budgets, txs), nil
}
