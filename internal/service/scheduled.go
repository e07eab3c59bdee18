package service

import (
	"context"
	"errors"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/observability"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/ledger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var scheduledTracer = otel.Tracer("service/scheduled")

// ============================================================
// Scheduled expenses
// ============================================================

func (s *FinanceService) CreateScheduledExpense(ctx context.Context, familyID string, req *domain.ScheduledExpenseRequest) (*domain.ScheduledExpense, error) {
	ctx, span := scheduledTracer.Start(ctx, "FinanceService.CreateScheduledExpense")
	defer span.End()

	if req.Description == "" {
		return nil, &domain.ErrValidation{Field: "description", Message: "description is required"}
	}
	if req.DueDay < 1 || req.DueDay > 31 {
		return nil, &domain.ErrValidation{Field: "dueDay", Message: "dueDay must be between 1 and 31"}
	}
	if req.Amount < 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "amount cannot be negative"}
	}
	if req.AccountID == "" {
		return nil, &domain.ErrValidation{Field: "accountId", Message: "accountId is required"}
	}
	if _, err := s.store.GetAccount(ctx, familyID, req.AccountID); err != nil {
		return nil, err
	}

	e := &domain.ScheduledExpense{
		ID:          uuid.NewString(),
		FamilyID:    familyID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		DueDay:      req.DueDay,
		MemberID:    req.MemberID,
		AccountID:   req.AccountID,
	}
	return s.store.CreateScheduledExpense(ctx, familyID, e)
}

func (s *FinanceService) ListScheduledExpenses(ctx context.Context, familyID string) ([]domain.ScheduledExpense, error) {
	ctx, span := scheduledTracer.Start(ctx, "FinanceService.ListScheduledExpenses")
	defer span.End()

	return s.store.ListScheduledExpenses(ctx, familyID)
}

func (s *FinanceService) UpdateScheduledExpense(ctx context.Context, familyID, expenseID string, req *domain.ScheduledExpenseRequest) (*domain.ScheduledExpense, error) {
	ctx, span := scheduledTracer.Start(ctx, "FinanceService.UpdateScheduledExpense")
	defer span.End()

	cur, err := s.store.GetScheduledExpense(ctx, familyID, expenseID)
	if err != nil {
		return nil, err
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
	if req.DueDay != 0 {
		if req.DueDay < 1 || req.DueDay > 31 {
			return nil, &domain.ErrValidation{Field: "dueDay", Message: "dueDay must be between 1 and 31"}
		}
		cur.DueDay = req.DueDay
	}
	if req.AccountID != "" {
		if _, err := s.store.GetAccount(ctx, familyID, req.AccountID); err != nil {
			return nil, err
		}
		cur.AccountID = req.AccountID
	}
	return s.store.UpdateScheduledExpense(ctx, familyID, expenseID, cur)
}

func (s *FinanceService) DeleteScheduledExpense(ctx context.Context, familyID, expenseID string) error {
	ctx, span := scheduledTracer.Start(ctx, "FinanceService.DeleteScheduledExpense")
	defer span.End()

	if _, err := s.store.GetScheduledExpense(ctx, familyID, expenseID); err != nil {
		return err
	}
	return s.store.DeleteScheduledExpense(ctx, familyID, expenseID)
}

// ProjectScheduledExpenses resolves every expense for a period: effective
// amount (live cycle total for credit-card payoffs) plus confirmation state.
func (s *FinanceService) ProjectScheduledExpenses(ctx context.Context, familyID string, year, month int) ([]domain.ScheduledExpenseView, error) {
	ctx, span := scheduledTracer.Start(ctx, "FinanceService.ProjectScheduledExpenses")
	defer span.End()

	if month < 1 || month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "month must be between 1 and 12"}
	}

	expenses, err := s.store.ListScheduledExpenses(ctx, familyID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.ListAccounts(ctx, familyID)
	if err != nil {
		return nil, err
	}
	txs, err := s.loadTransactions(ctx, familyID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		byID[accounts[i].ID] = &accounts[i]
	}
	return ledger.ProjectAll(expenses, byID, year, month, txs), nil
}

// ConfirmScheduledExpense turns one period of an expense into a real
// transaction, exactly once. The period key is appended with a guarded
// write; losing the race yields ErrDuplicate and no transaction.
func (s *FinanceService) ConfirmScheduledExpense(ctx context.Context, familyID, expenseID string, req *domain.ConfirmRequest) (*domain.ConfirmResponse, error) {
	ctx, span := scheduledTracer.Start(ctx, "FinanceService.ConfirmScheduledExpense")
	defer span.End()
	span.SetAttributes(attribute.String("expense.id", expenseID))

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("confirm_scheduled", time.Since(start)) }()

	if req.Year < 2000 {
		return nil, &domain.ErrValidation{Field: "year", Message: "year must be 2000 or later"}
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "month must be between 1 and 12"}
	}

	e, err := s.store.GetScheduledExpense(ctx, familyID, expenseID)
	if err != nil {
		return nil, err
	}

	periodKey := ledger.PeriodKey(req.Year, req.Month)
	if ledger.Confirmed(e, req.Year, req.Month) {
		return nil, &domain.ErrDuplicate{Key: "confirm:" + expenseID + ":" + periodKey}
	}

	amount := req.Amount
	if amount <= 0 {
		var credit *domain.Account
		if e.CreditAccountID != "" {
			credit, err = s.store.GetAccount(ctx, familyID, e.CreditAccountID)
			if err != nil && !errors.As(err, new(*domain.ErrNotFound)) {
				return nil, err
			}
		}
		txs, err := s.loadTransactions(ctx, familyID)
		if err != nil {
			return nil, err
		}
		amount = ledger.EffectiveAmount(e, credit, req.Year, req.Month, txs)
	}
	if amount <= 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "nothing to confirm, effective amount is 0"}
	}

	accountID := req.AccountID
	if accountID == "" {
		accountID = e.AccountID
	}
	date := req.Date
	if date == "" {
		date = ledger.DueDate(e, req.Year, req.Month).Format("2006-01-02")
	}
	when, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	// Claim the period before writing the transaction. If the service
	// dies in between, no money movement was recorded and the period can
	// be released manually; the reverse order could double-book.
	updated, err := s.store.AppendConfirmedPeriod(ctx, familyID, expenseID, periodKey)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		ID:          uuid.NewString(),
		FamilyID:    familyID,
		Date:        when,
		Description: e.Description,
		Amount:      amount,
		Type:        domain.TxExpense,
		Category:    e.Category,
		MemberID:    e.MemberID,
		AccountID:   accountID,
	}
	created, err := s.store.CreateTransaction(ctx, familyID, tx)
	if err != nil {
		return nil, err
	}
	s.invalidateTransactions(familyID)
	s.metrics.IncrWrite(observability.WriteConfirmation)

	s.logger.Info("scheduled expense confirmed",
		zap.String("family_id", familyID),
		zap.String("expense_id", expenseID),
		zap.String("period", periodKey),
		zap.Float64("amount", amount),
	)
	return &domain.ConfirmResponse{Transaction: created, Expense: updated}, nil
}
