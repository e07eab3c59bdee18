package service

import (
	"context"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/observability"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/ledger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var txTracer = otel.Tracer("service/transactions")

// ============================================================
// Transactions
// ============================================================

func (s *FinanceService) CreateTransaction(ctx context.Context, familyID string, req *domain.TransactionRequest) (*domain.Transaction, error) {
	ctx, span := txTracer.Start(ctx, "FinanceService.CreateTransaction")
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("create_transaction", time.Since(start)) }()

	tx, err := s.buildTransaction(ctx, familyID, req)
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreateTransaction(ctx, familyID, tx)
	if err != nil {
		return nil, err
	}
	s.invalidateTransactions(familyID)
	s.metrics.IncrWrite(observability.WriteTransaction)

	s.logger.Info("transaction created",
		zap.String("family_id", familyID),
		zap.String("transaction_id", created.ID),
		zap.String("type", created.Type),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (s *FinanceService) buildTransaction(ctx context.Context, familyID string, req *domain.TransactionRequest) (*domain.Transaction, error) {
	if req.Type != domain.TxIncome && req.Type != domain.TxExpense {
		return nil, &domain.ErrValidation{Field: "type", Message: "type must be income or expense"}
	}
	if req.Amount <= 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "amount must be positive"}
	}
	if req.AccountID == "" {
		return nil, &domain.ErrValidation{Field: "accountId", Message: "accountId is required"}
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	// The account must exist; a typo here would silently skew balances.
	if _, err := s.store.GetAccount(ctx, familyID, req.AccountID); err != nil {
		return nil, err
	}

	return &domain.Transaction{
		ID:          uuid.NewString(),
		FamilyID:    familyID,
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		MemberID:    req.MemberID,
		AccountID:   req.AccountID,
	}, nil
}

// ListTransactions returns the family's transactions, optionally filtered
// by period and dimensions. Unset filter dimensions match everything.
func (s *FinanceService) ListTransactions(ctx context.Context, familyID string, f ledger.Filter) ([]domain.Transaction, error) {
	ctx, span := txTracer.Start(ctx, "FinanceService.ListTransactions")
	defer span.End()

	txs, err := s.loadTransactions(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return ledger.Apply(txs, f), nil
}

func (s *FinanceService) GetTransaction(ctx context.Context, familyID, txID string) (*domain.Transaction, error) {
	ctx, span := txTracer.Start(ctx, "FinanceService.GetTransaction")
	defer span.End()

	return s.store.GetTransaction(ctx, familyID, txID)
}

func (s *FinanceService) UpdateTransaction(ctx context.Context, familyID, txID string, req *domain.TransactionRequest) (*domain.Transaction, error) {
	ctx, span := txTracer.Start(ctx, "FinanceService.UpdateTransaction")
	defer span.End()

	cur, err := s.store.GetTransaction(ctx, familyID, txID)
	if err != nil {
		return nil, err
	}
	if cur.TransferGroupID != "" {
		return s.updateTransferLeg(ctx, familyID, cur, req)
	}

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		cur.Date = date
	}
	if req.Description != "" {
		cur.Description = req.Description
	}
	if req.Amount > 0 {
		cur.Amount = req.Amount
	}
	if req.Category != "" {
		cur.Category = req.Category
	}
	if req.Type != "" {
		if req.Type != domain.TxIncome && req.Type != domain.TxExpense {
			return nil, &domain.ErrValidation{Field: "type", Message: "type must be income or expense"}
		}
		cur.Type = req.Type
	}

	updated, err := s.store.UpdateTransaction(ctx, familyID, txID, cur)
	if err != nil {
		return nil, err
	}
	s.invalidateTransactions(familyID)
	return updated, nil
}

// updateTransferLeg edits a transfer by deleting and recreating the pair
// under the same group id. Shared fields (date, description, amount) apply
// to both legs so the equal-amount invariant holds; an account change only
// moves the edited leg. Type and category of transfer legs are fixed.
func (s *FinanceService) updateTransferLeg(ctx context.Context, familyID string, edited *domain.Transaction, req *domain.TransactionRequest) (*domain.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx, familyID)
	if err != nil {
		return nil, err
	}
	var legs []domain.Transaction
	for i := range txs {
		if txs[i].TransferGroupID == edited.TransferGroupID {
			legs = append(legs, txs[i])
		}
	}
	if len(legs) != 2 {
		return nil, &domain.ErrConflict{Message: "transfer group is incomplete"}
	}

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		legs[0].Date = date
		legs[1].Date = date
	}
	if req.Description != "" {
		legs[0].Description = req.Description
		legs[1].Description = req.Description
	}
	if req.Amount > 0 {
		legs[0].Amount = req.Amount
		legs[1].Amount = req.Amount
	}
	if req.AccountID != "" {
		if _, err := s.store.GetAccount(ctx, familyID, req.AccountID); err != nil {
			return nil, err
		}
		for i := range legs {
			if legs[i].ID == edited.ID {
				legs[i].AccountID = req.AccountID
			}
		}
	}

	if err := s.store.DeleteTransferGroup(ctx, familyID, edited.TransferGroupID); err != nil {
		return nil, err
	}
	var result *domain.Transaction
	for i := range legs {
		leg := legs[i]
		wasEdited := leg.ID == edited.ID
		leg.ID = uuid.NewString()
		created, err := s.store.CreateTransaction(ctx, familyID, &leg)
		if err != nil {
			return nil, err
		}
		if wasEdited {
			result = created
		}
	}
	s.invalidateTransactions(familyID)

	s.logger.Info("transfer updated",
		zap.String("family_id", familyID),
		zap.String("transfer_group_id", edited.TransferGroupID),
	)
	return result, nil
}

// DeleteTransaction removes a transaction. Deleting either leg of a
// transfer removes the whole group so no half-transfer survives.
func (s *FinanceService) DeleteTransaction(ctx context.Context, familyID, txID string) error {
	ctx, span := txTracer.Start(ctx, "FinanceService.DeleteTransaction")
	defer span.End()

	cur, err := s.store.GetTransaction(ctx, familyID, txID)
	if err != nil {
		return err
	}

	if cur.TransferGroupID != "" {
		err = s.store.DeleteTransferGroup(ctx, familyID, cur.TransferGroupID)
	} else {
		err = s.store.DeleteTransaction(ctx, familyID, txID)
	}
	if err != nil {
		return err
	}
	s.invalidateTransactions(familyID)
	return nil
}

// ============================================================
// Transfers
// ============================================================

// CreateTransfer moves money between accounts as an expense leg on the
// source and an income leg on the destination, both sharing one group id
// and equal amounts.
func (s *FinanceService) CreateTransfer(ctx context.Context, familyID string, req *domain.TransferRequest) (*domain.TransferResponse, error) {
	ctx, span := txTracer.Start(ctx, "FinanceService.CreateTransfer")
	defer span.End()
	span.SetAttributes(
		attribute.String("transfer.from", req.FromAccountID),
		attribute.String("transfer.to", req.ToAccountID),
	)

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("create_transfer", time.Since(start)) }()

	if req.Amount <= 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "amount must be positive"}
	}
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return nil, &domain.ErrValidation{Field: "fromAccountId", Message: "both accounts are required"}
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, &domain.ErrValidation{Field: "toAccountId", Message: "accounts must differ"}
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetAccount(ctx, familyID, req.FromAccountID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetAccount(ctx, familyID, req.ToAccountID); err != nil {
		return nil, err
	}

	groupID := uuid.NewString()
	desc := req.Description
	if desc == "" {
		desc = "Transferencia"
	}

	out := &domain.Transaction{
		ID:              uuid.NewString(),
		FamilyID:        familyID,
		Date:            date,
		Description:     desc,
		Amount:          req.Amount,
		Type:            domain.TxExpense,
		Category:        "Transferencia",
		MemberID:        req.MemberID,
		AccountID:       req.FromAccountID,
		TransferGroupID: groupID,
	}
	in := &domain.Transaction{
		ID:              uuid.NewString(),
		FamilyID:        familyID,
		Date:            date,
		Description:     desc,
		Amount:          req.Amount,
		Type:            domain.TxIncome,
		Category:        "Transferencia",
		MemberID:        req.MemberID,
		AccountID:       req.ToAccountID,
		TransferGroupID: groupID,
	}

	createdOut, err := s.store.CreateTransaction(ctx, familyID, out)
	if err != nil {
		return nil, err
	}
	createdIn, err := s.store.CreateTransaction(ctx, familyID, in)
	if err != nil {
		// Roll back the first leg so no half-transfer is left behind.
		if delErr := s.store.DeleteTransferGroup(ctx, familyID, groupID); delErr != nil {
			s.logger.Error("failed to roll back transfer leg",
				zap.String("transfer_group_id", groupID),
				zap.Error(delErr),
			)
		}
		return nil, err
	}
	s.invalidateTransactions(familyID)
	s.metrics.IncrWrite(observability.WriteTransfer)

	s.logger.Info("transfer created",
		zap.String("family_id", familyID),
		zap.String("transfer_group_id", groupID),
		zap.Float64("amount", req.Amount),
	)
	return &domain.TransferResponse{
		TransferGroupID: groupID,
		Out:             createdOut,
		In:              createdIn,
	}, nil
}
