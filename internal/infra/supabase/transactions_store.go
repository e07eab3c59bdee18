package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// ============================================================
// Transactions — CRUD via PostgREST
// ============================================================

func transactionRow(familyID string, tx *domain.Transaction) map[string]any {
	return map[string]any{
		"id":                tx.ID,
		"family_id":         familyID,
		"date":              tx.Date.Format("2006-01-02"),
		"description":       tx.Description,
		"amount":            tx.Amount,
		"type":              tx.Type,
		"category":          tx.Category,
		"member_id":         nullable(tx.MemberID),
		"account_id":        tx.AccountID,
		"transfer_group_id": nullable(tx.TransferGroupID),
	}
}

func (c *Client) CreateTransaction(ctx context.Context, familyID string, tx *domain.Transaction) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateTransaction")
	defer span.End()

	body, err := c.doPost(ctx, "transactions", transactionRow(familyID, tx))
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/transactions", Err: err}
	}
	return firstRow[domain.Transaction](body, "transaction")
}

// ListTransactions returns the family's full transaction log, newest
// first. Aggregations recompute from this list, so it goes through the
// guarded read path.
func (c *Client) ListTransactions(ctx context.Context, familyID string) ([]domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListTransactions")
	defer span.End()

	path := fmt.Sprintf("transactions?family_id=eq.%s&order=date.desc", familyID)
	body, err := c.listGuarded(ctx, "supabase/transactions", path)
	if err != nil {
		return nil, err
	}
	return decodeRows[domain.Transaction](body, "transactions")
}

func (c *Client) GetTransaction(ctx context.Context, familyID, txID string) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetTransaction")
	defer span.End()

	path := fmt.Sprintf("transactions?family_id=eq.%s&id=eq.%s&limit=1", familyID, txID)
	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/transactions", Err: err}
	}
	rows, err := decodeRows[domain.Transaction](body, "transaction")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "transaction", ID: txID}
	}
	return &rows[0], nil
}

func (c *Client) UpdateTransaction(ctx context.Context, familyID, txID string, tx *domain.Transaction) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateTransaction")
	defer span.End()

	row := transactionRow(familyID, tx)
	delete(row, "id")
	delete(row, "family_id")
	delete(row, "transfer_group_id")

	path := fmt.Sprintf("transactions?family_id=eq.%s&id=eq.%s", familyID, txID)
	body, err := c.doPatch(ctx, path, row)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase/transactions", Err: err}
	}
	rows, err := decodeRows[domain.Transaction](body, "transaction")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "transaction", ID: txID}
	}
	return &rows[0], nil
}

func (c *Client) DeleteTransaction(ctx context.Context, familyID, txID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteTransaction")
	defer span.End()

	path := fmt.Sprintf("transactions?family_id=eq.%s&id=eq.%s", familyID, txID)
	if err := c.doDelete(ctx, path); err != nil {
		return &domain.ErrExternalService{Service: "supabase/transactions", Err: err}
	}
	return nil
}

// DeleteTransferGroup removes both legs of a transfer in one call.
func (c *Client) DeleteTransferGroup(ctx context.Context, familyID, groupID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteTransferGroup")
	defer span.End()

	path := fmt.Sprintf("transactions?family_id=eq.%s&transfer_group_id=eq.%s", familyID, groupID)
	if err := c.doDelete(ctx, path); err != nil {
		return &domain.ErrExternalService{Service: "supabase/transactions", Err: err}
	}
	return nil
}

// ClearTransactionMember nulls the member reference on every transaction
// of a deleted member. The rows themselves survive.
func (c *Client) ClearTransactionMember(ctx context.Context, familyID, memberID string) error {
	ctx, span := tracer.Start(ctx, "Supabase.ClearTransactionMember")
	defer span.End()

	path := fmt.Sprintf("transactions?family_id=eq.%s&member_id=eq.%s", familyID, memberID)
	if _, err := c.doPatch(ctx, path, map[string]any{"member_id": nil}); err != nil {
		return &domain.ErrExternalService{Service: "supabase/transactions", Err: err}
	}
	return nil
}
