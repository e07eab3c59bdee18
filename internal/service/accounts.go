package service

import (
	"context"
	"fmt"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/ledger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var accountTracer = otel.Tracer("service/accounts")

// ============================================================
// Accounts
// ============================================================

// CreateAccount validates and persists a new account. Credit and loan
// accounts automatically get a linked scheduled expense so the monthly
// payment shows up in projections without manual setup.
func (s *FinanceService) CreateAccount(ctx context.Context, familyID string, req *domain.AccountRequest) (*domain.Account, error) {
	ctx, span := accountTracer.Start(ctx, "FinanceService.CreateAccount")
	defer span.End()

	if req.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if !domain.ValidAccountType(req.Type) {
		return nil, &domain.ErrValidation{Field: "type", Message: "type must be cash, bank, credit or loan"}
	}
	if req.Type == domain.AccountCredit && (req.ClosingDay < 1 || req.ClosingDay > 31) {
		return nil, &domain.ErrValidation{Field: "closingDay", Message: "closingDay must be between 1 and 31"}
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	a := &domain.Account{
		ID:             uuid.NewString(),
		FamilyID:       familyID,
		Name:           req.Name,
		Type:           req.Type,
		MemberID:       req.MemberID,
		Currency:       currency,
		BankName:       req.BankName,
		AccountNumber:  req.AccountNumber,
		CardLast4:      req.CardLast4,
		CreditLimit:    req.CreditLimit,
		ClosingDay:     req.ClosingDay,
		PaymentDay:     req.PaymentDay,
		LoanPrincipal:  req.LoanPrincipal,
		MonthlyPayment: req.MonthlyPayment,
	}
	created, err := s.store.CreateAccount(ctx, familyID, a)
	if err != nil {
		return nil, err
	}

	if created.IsLiability() {
		if err := s.createPaymentExpense(ctx, familyID, created); err != nil {
			// The account exists; a missing payment reminder is recoverable.
			s.logger.Warn("failed to create payment expense for liability account",
				zap.String("account_id", created.ID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("account created",
		zap.String("family_id", familyID),
		zap.String("account_id", created.ID),
		zap.String("type", created.Type),
	)
	return created, nil
}

// createPaymentExpense synthesises the scheduled expense that tracks a
// liability account's monthly payment.
func (s *FinanceService) createPaymentExpense(ctx context.Context, familyID string, a *domain.Account) error {
	e := &domain.ScheduledExpense{
		ID:          uuid.NewString(),
		FamilyID:    familyID,
		Description: fmt.Sprintf("Pago %s", a.Name),
		Category:    "Deudas",
		DueDay:      a.PaymentDay,
		MemberID:    a.MemberID,
		AccountID:   a.ID,
		Automatic:   true,
	}
	if e.DueDay == 0 {
		e.DueDay = 1
	}
	switch a.Type {
	case domain.AccountCredit:
		// Amount resolves live from the billing cycle.
		e.CreditAccountID = a.ID
	case domain.AccountLoan:
		e.Amount = a.MonthlyPayment
		e.Category = "Vivienda"
	}
	_, err := s.store.CreateScheduledExpense(ctx, familyID, e)
	return err
}

func (s *FinanceService) ListAccounts(ctx context.Context, familyID string) ([]domain.Account, error) {
	ctx, span := accountTracer.Start(ctx, "FinanceService.ListAccounts")
	defer span.End()

	return s.store.ListAccounts(ctx, familyID)
}

func (s *FinanceService) GetAccount(ctx context.Context, familyID, accountID string) (*domain.Account, error) {
	ctx, span := accountTracer.Start(ctx, "FinanceService.GetAccount")
	defer span.End()

	return s.store.GetAccount(ctx, familyID, accountID)
}

func (s *FinanceService) UpdateAccount(ctx context.Context, familyID, accountID string, req *domain.AccountRequest) (*domain.Account, error) {
	ctx, span := accountTracer.Start(ctx, "FinanceService.UpdateAccount")
	defer span.End()

	cur, err := s.store.GetAccount(ctx, familyID, accountID)
	if err != nil {
		return nil, err
	}
	if req.Type != "" && req.Type != cur.Type {
		return nil, &domain.ErrValidation{Field: "type", Message: "account type cannot change"}
	}
	if req.Name != "" {
		cur.Name = req.Name
	}
	if req.BankName != "" {
		cur.BankName = req.BankName
	}
	if req.CreditLimit != 0 {
		cur.CreditLimit = req.CreditLimit
	}
	if req.ClosingDay != 0 {
		if req.ClosingDay < 1 || req.ClosingDay > 31 {
			return nil, &domain.ErrValidation{Field: "closingDay", Message: "closingDay must be between 1 and 31"}
		}
		cur.ClosingDay = req.ClosingDay
	}
	if req.PaymentDay != 0 {
		cur.PaymentDay = req.PaymentDay
	}
	if req.MonthlyPayment != 0 {
		cur.MonthlyPayment = req.MonthlyPayment
	}
	return s.store.UpdateAccount(ctx, familyID, accountID, cur)
}

func (s *FinanceService) DeleteAccount(ctx context.Context, familyID, accountID string) error {
	ctx, span := accountTracer.Start(ctx, "FinanceService.DeleteAccount")
	defer span.End()

	if _, err := s.store.GetAccount(ctx, familyID, accountID); err != nil {
		return err
	}
	return s.store.DeleteAccount(ctx, familyID, accountID)
}

// ============================================================
// Derived balances and billing cycles
// ============================================================

// GetBalances derives every account balance from the transaction log and
// groups totals by account type.
func (s *FinanceService) GetBalances(ctx context.Context, familyID string) (*domain.BalancesByTypeResponse, error) {
	ctx, span := accountTracer.Start(ctx, "FinanceService.GetBalances")
	defer span.End()

	accounts, err := s.store.ListAccounts(ctx, familyID)
	if err != nil {
		return nil, err
	}
	txs, err := s.loadTransactions(ctx, familyID)
	if err != nil {
		return nil, err
	}
	resp := ledger.BalancesByType(accounts, txs)
	return &resp, nil
}

// GetBillingCycle resolves a credit account's current and next billing
// cycle as of now, with the running statement total.
func (s *FinanceService) GetBillingCycle(ctx context.Context, familyID, accountID string) (*domain.BillingCycleResponse, error) {
	ctx, span := accountTracer.Start(ctx, "FinanceService.GetBillingCycle")
	defer span.End()
	span.SetAttributes(attribute.String("account.id", accountID))

	acc, err := s.store.GetAccount(ctx, familyID, accountID)
	if err != nil {
		return nil, err
	}
	if acc.Type != domain.AccountCredit || acc.ClosingDay == 0 {
		return nil, &domain.ErrValidation{Field: "accountId", Message: "account has no billing cycle"}
	}

	txs, err := s.loadTransactions(ctx, familyID)
	if err != nil {
		return nil, err
	}

	cur := ledger.CurrentCycle(acc.ClosingDay, time.Now().UTC())
	next := ledger.NextCycle(acc.ClosingDay, cur)

	return &domain.BillingCycleResponse{
		AccountID:    acc.ID,
		ClosingDay:   acc.ClosingDay,
		CurrentStart: cur.Start.Format("2006-01-02"),
		CurrentEnd:   cur.End.Format("2006-01-02"),
		NextStart:    next.Start.Format("2006-01-02"),
		NextEnd:      next.End.Format("2006-01-02"),
		CycleTotal:   ledger.CycleExpenses(acc.ID, cur, txs),
	}, nil
}
