package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// ============================================================
// Accounts — CRUD via PostgREST
// ============================================================

func accountRow(familyID string, a *domain.Account) map[string]any {
	return map[string]any{
		"id":              a.ID,
		"family_id":       familyID,
		"name":            a.Name,
		"type":            a.Type,
		"member_id":       nullable(a.MemberID),
		"currency":        a.Currency,
		"bank_name":       a.BankName,
		"account_number":  a.AccountNumber,
		"card_last4":      a.CardLast4,
		"credit_limit":    a.CreditLimit,
		"closing_day":     a.ClosingDay,
		"payment_day":     a.PaymentDay,
		"loan_principal":  a.LoanPrincipal,
		"monthly_payment": a.MonthlyPayment,
	}
}

// nullable maps empty strings to SQL NULL for foreign key columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (c *Client) CreateAccount(ctx context.Context, familyID string, a *domain.Account) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateAccount")
	defer span.End()

	body, err := c.doPost(ctx, "accounts", accountRow(familyID, a))
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/accounts", Err: err}
	}
	return firstRow[domain.Account](body, "account")
}

func (c *Client) ListAccounts(ctx context.Context, familyID string) ([]domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListAccounts")
	defer span.End()

	path := fmt.Sprintf("accounts?family_id=eq.%s&order=created_at.asc", familyID)
	body, err := c.listGuarded(ctx, "supabase/accounts", path)
	if err != nil {
		return nil, err
	}
	return decodeRows[domain.Account](body, "accounts")
}

func (c *Client) GetAccount(ctx context.Context, familyID, accountID string) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetAccount")
	defer span.End()

	path := fmt.Sprintf("accounts?family_id=eq.%s&id=eq.%s&limit=1", familyID, accountID)
	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/accounts", Err: err}
	}
	rows, err := decodeRows[domain.Account](body, "account")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "account", ID: accountID}
	}
	return &rows[0], nil
}

func (c *Client) UpdateAccount(ctx context.Context, familyID, accountID string, a *domain.Account) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateAccount")
	defer span.End()

	row := accountRow(familyID, a)
	delete(row, "id")
	delete(row, "family_id")

	path := fmt.Sprintf("accounts?family_id=eq.%s&id=eq.%s", familyID, accountID)
	body, err := c.doPatch(ctx, path, row)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/accounts", Err: err}
	}
	rows, err := decodeRows[domain.Account](body, "account")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "account", ID: accountID}
	}
	return &rows[0], nil
}

func (c *Client) DeleteAccount(ctx context.Context, familyID, accountID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteAccount")
	defer span.End()

	path := fmt.Sprintf("accounts?family_id=eq.%s&id=eq.%s", familyID, accountID)
	if err := c.doDelete(ctx, path); err != nil {
		return &domain.ErrExternalService{Service: "supabase/accounts", Err: err}
	}
	return nil
}
