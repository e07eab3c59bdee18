package supabase

import (
	"context"
	"fmt"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// ============================================================
// Budgets — upsert keyed on (family_id, category, year, month)
// ============================================================

// UpsertBudget creates or replaces the budget for its (category, year,
// month) tuple. The table carries a unique constraint on the tuple, so
// merge-duplicates makes the write idempotent.
func (c *Client) UpsertBudget(ctx context.Context, familyID string, b *domain.Budget) (*domain.Budget, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpsertBudget")
	defer span.End()

	body, err := c.doUpsert(ctx, "budgets?on_conflict=family_id,category,year,month", map[string]any{
		"id":           b.ID,
		"family_id":    familyID,
		"category":     b.Category,
		"year":         b.Year,
		"month":        b.Month,
		"limit_amount": b.Limit,
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/budgets", Err: err}
	}
	return firstRow[domain.Budget](body, "budget")
}

func (c *Client) ListBudgets(ctx context.Context, familyID string, year, month int) ([]domain.Budget, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListBudgets")
	defer span.End()

	path := fmt.Sprintf("budgets?family_id=eq.%s&year=eq.%d&month=eq.%d&order=category.asc", familyID, year, month)
	body, err := c.listGuarded(ctx, "supabase/budgets", path)
	if err != nil {
		return nil, err
	}
	return decodeRows[domain.Budget](body, "budgets")
}

func (c *Client) DeleteBudget(ctx context.Context, familyID, budgetID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteBudget")
	defer span.End()

	path := fmt.Sprintf("budgets?family_id=eq.%s&id=eq.%s", familyID, budgetID)
	if err := c.doDelete(ctx, path); err != nil {
		return &domain.ErrExternalService{Service: "supabase/budgets", Err: err}
	}
	return nil
}
