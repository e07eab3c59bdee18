package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// ============================================================
// Scheduled expenses — CRUD plus atomic period confirmation
// ============================================================

func scheduledRow(familyID string, e *domain.ScheduledExpense) map[string]any {
	periods := e.ConfirmedPeriods
	if periods == nil {
		periods = []string{}
	}
	return map[string]any{
		"id":                e.ID,
		"family_id":         familyID,
		"description":       e.Description,
		"amount":            e.Amount,
		"category":          e.Category,
		"due_day":           e.DueDay,
		"member_id":         nullable(e.MemberID),
		"account_id":        e.AccountID,
		"automatic":         e.Automatic,
		"credit_account_id": nullable(e.CreditAccountID),
		"confirmed_periods": periods,
	}
}

func (c *Client) CreateScheduledExpense(ctx context.Context, familyID string, e *domain.ScheduledExpense) (*domain.ScheduledExpense, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateScheduledExpense")
	defer span.End()

	body, err := c.doPost(ctx, "scheduled_expenses", scheduledRow(familyID, e))
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/scheduled", Err: err}
	}
	return firstRow[domain.ScheduledExpense](body, "scheduled expense")
}

func (c *Client) ListScheduledExpenses(ctx context.Context, familyID string) ([]domain.ScheduledExpense, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListScheduledExpenses")
	defer span.End()

	path := fmt.Sprintf("scheduled_expenses?family_id=eq.%s&order=due_day.asc", familyID)
	body, err := c.listGuarded(ctx, "supabase/scheduled", path)
	if err != nil {
		return nil, err
	}
	return decodeRows[domain.ScheduledExpense](body, "scheduled expenses")
}

func (c *Client) GetScheduledExpense(ctx context.Context, familyID, expenseID string) (*domain.ScheduledExpense, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetScheduledExpense")
	defer span.End()

	path := fmt.Sprintf("scheduled_expenses?family_id=eq.%s&id=eq.%s&limit=1", familyID, expenseID)
	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/scheduled", Err: err}
	}
	rows, err := decodeRows[domain.ScheduledExpense](body, "scheduled expense")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "scheduled expense", ID: expenseID}
	}
	return &rows[0], nil
}

func (c *Client) UpdateScheduledExpense(ctx context.Context, familyID, expenseID string, e *domain.ScheduledExpense) (*domain.ScheduledExpense, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateScheduledExpense")
	defer span.End()

	row := scheduledRow(familyID, e)
	delete(row, "id")
	delete(row, "family_id")
	delete(row, "confirmed_periods")

	path := fmt.Sprintf("scheduled_expenses?family_id=eq.%s&id=eq.%s", familyID, expenseID)
	body, err := c.doPatch(ctx, path, row)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/scheduled", Err: err}
	}
	rows, err := decodeRows[domain.ScheduledExpense](body, "scheduled expense")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "scheduled expense", ID: expenseID}
	}
	return &rows[0], nil
}

func (c *Client) DeleteScheduledExpense(ctx context.Context, familyID, expenseID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteScheduledExpense")
	defer span.End()

	path := fmt.Sprintf("scheduled_expenses?family_id=eq.%s&id=eq.%s", familyID, expenseID)
	if err := c.doDelete(ctx, path); err != nil {
		return &domain.ErrExternalService{Service: "supabase/scheduled", Err: err}
	}
	return nil
}

// AppendConfirmedPeriod appends a period key atomically. The PATCH filter
// requires the array to NOT already contain the key, so a concurrent
// duplicate confirmation matches zero rows and loses the race.
func (c *Client) AppendConfirmedPeriod(ctx context.Context, familyID, expenseID, periodKey string) (*domain.ScheduledExpense, error) {
	ctx, span := tracer.Start(ctx, "Supabase.AppendConfirmedPeriod")
	defer span.End()

	cur, err := c.GetScheduledExpense(ctx, familyID, expenseID)
	if err != nil {
		return nil, err
	}

	notContains := url.QueryEscape(fmt.Sprintf(`{"%s"}`, periodKey))
	path := fmt.Sprintf("scheduled_expenses?family_id=eq.%s&id=eq.%s&confirmed_periods=not.cs.%s",
		familyID, expenseID, notContains)
	body, err := c.doPatch(ctx, path, map[string]any{
		"confirmed_periods": append(cur.ConfirmedPeriods, periodKey),
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/scheduled", Err: err}
	}
	rows, err := decodeRows[domain.ScheduledExpense](body, "scheduled expense")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrDuplicate{Key: fmt.Sprintf("confirm:%s:%s", expenseID, periodKey)}
	}
	return &rows[0], nil
}
