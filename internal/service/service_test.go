package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/cache"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/infra/observability"
	"github.com/finandev25-glitch/ControlFinan-sub000/internal/service"

	"go.uber.org/zap"
)

// mockStore is an in-memory port.FinanceStore for service tests.
type mockStore struct {
	members   map[string]domain.Member
	invites   map[string]domain.MemberInvite
	accounts  map[string]domain.Account
	txs       map[string]domain.Transaction
	budgets   map[string]domain.Budget
	scheduled map[string]domain.ScheduledExpense
	cats      map[string]domain.Category
}

func newMockStore() *mockStore {
	return &mockStore{
		members:   make(map[string]domain.Member),
		invites:   make(map[string]domain.MemberInvite),
		accounts:  make(map[string]domain.Account),
		txs:       make(map[string]domain.Transaction),
		budgets:   make(map[string]domain.Budget),
		scheduled: make(map[string]domain.ScheduledExpense),
		cats:      make(map[string]domain.Category),
	}
}

func (m *mockStore) CreateMember(_ context.Context, familyID string, mem *domain.Member) (*domain.Member, error) {
	mem.FamilyID = familyID
	m.members[mem.ID] = *mem
	return mem, nil
}

func (m *mockStore) ListMembers(_ context.Context, familyID string) ([]domain.Member, error) {
	var out []domain.Member
	for _, v := range m.members {
		if v.FamilyID == familyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) GetMember(_ context.Context, familyID, id string) (*domain.Member, error) {
	v, ok := m.members[id]
	if !ok || v.FamilyID != familyID {
		return nil, &domain.ErrNotFound{Resource: "member", ID: id}
	}
	return &v, nil
}

func (m *mockStore) UpdateMember(_ context.Context, familyID, id string, mem *domain.Member) (*domain.Member, error) {
	if _, ok := m.members[id]; !ok {
		return nil, &domain.ErrNotFound{Resource: "member", ID: id}
	}
	m.members[id] = *mem
	return mem, nil
}

func (m *mockStore) DeleteMember(_ context.Context, _, id string) error {
	delete(m.members, id)
	return nil
}

func (m *mockStore) CreateInvite(_ context.Context, familyID string, inv *domain.MemberInvite) (*domain.MemberInvite, error) {
	inv.FamilyID = familyID
	m.invites[inv.ID] = *inv
	return inv, nil
}

func (m *mockStore) ListOpenInvites(_ context.Context, familyID string) ([]domain.MemberInvite, error) {
	var out []domain.MemberInvite
	for _, v := range m.invites {
		if v.FamilyID == familyID && !v.Redeemed {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) MarkInviteRedeemed(_ context.Context, id string) error {
	v, ok := m.invites[id]
	if !ok || v.Redeemed {
		return &domain.ErrDuplicate{Key: "invite:" + id}
	}
	v.Redeemed = true
	m.invites[id] = v
	return nil
}

func (m *mockStore) CreateAccount(_ context.Context, familyID string, a *domain.Account) (*domain.Account, error) {
	a.FamilyID = familyID
	m.accounts[a.ID] = *a
	return a, nil
}

func (m *mockStore) ListAccounts(_ context.Context, familyID string) ([]domain.Account, error) {
	var out []domain.Account
	for _, v := range m.accounts {
		if v.FamilyID == familyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) GetAccount(_ context.Context, familyID, id string) (*domain.Account, error) {
	v, ok := m.accounts[id]
	if !ok || v.FamilyID != familyID {
		return nil, &domain.ErrNotFound{Resource: "account", ID: id}
	}
	return &v, nil
}

func (m *mockStore) UpdateAccount(_ context.Context, _, id string, a *domain.Account) (*domain.Account, error) {
	if _, ok := m.accounts[id]; !ok {
		return nil, &domain.ErrNotFound{Resource: "account", ID: id}
	}
	m.accounts[id] = *a
	return a, nil
}

func (m *mockStore) DeleteAccount(_ context.Context, _, id string) error {
	delete(m.accounts, id)
	return nil
}

func (m *mockStore) CreateTransaction(_ context.Context, familyID string, tx *domain.Transaction) (*domain.Transaction, error) {
	tx.FamilyID = familyID
	m.txs[tx.ID] = *tx
	return tx, nil
}

func (m *mockStore) ListTransactions(_ context.Context, familyID string) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, v := range m.txs {
		if v.FamilyID == familyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) GetTransaction(_ context.Context, familyID, id string) (*domain.Transaction, error) {
	v, ok := m.txs[id]
	if !ok || v.FamilyID != familyID {
		return nil, &domain.ErrNotFound{Resource: "transaction", ID: id}
	}
	return &v, nil
}

func (m *mockStore) UpdateTransaction(_ context.Context, _, id string, tx *domain.Transaction) (*domain.Transaction, error) {
	if _, ok := m.txs[id]; !ok {
		return nil, &domain.ErrNotFound{Resource: "transaction", ID: id}
	}
	m.txs[id] = *tx
	return tx, nil
}

func (m *mockStore) DeleteTransaction(_ context.Context, _, id string) error {
	delete(m.txs, id)
	return nil
}

func (m *mockStore) DeleteTransferGroup(_ context.Context, _, groupID string) error {
	for id, v := range m.txs {
		if v.TransferGroupID == groupID {
			delete(m.txs, id)
		}
	}
	return nil
}

func (m *mockStore) ClearTransactionMember(_ context.Context, familyID, memberID string) error {
	for id, v := range m.txs {
		if v.FamilyID == familyID && v.MemberID == memberID {
			v.MemberID = ""
			m.txs[id] = v
		}
	}
	return nil
}

func (m *mockStore) UpsertBudget(_ context.Context, familyID string, b *domain.Budget) (*domain.Budget, error) {
	b.FamilyID = familyID
	for id, v := range m.budgets {
		if v.FamilyID == familyID && v.Category == b.Category && v.Year == b.Year && v.Month == b.Month {
			b.ID = id
			m.budgets[id] = *b
			return b, nil
		}
	}
	m.budgets[b.ID] = *b
	return b, nil
}

func (m *mockStore) ListBudgets(_ context.Context, familyID string, year, month int) ([]domain.Budget, error) {
	var out []domain.Budget
	for _, v := range m.budgets {
		if v.FamilyID == familyID && v.Year == year && v.Month == month {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) DeleteBudget(_ context.Context, _, id string) error {
	delete(m.budgets, id)
	return nil
}

func (m *mockStore) CreateScheduledExpense(_ context.Context, familyID string, e *domain.ScheduledExpense) (*domain.ScheduledExpense, error) {
	e.FamilyID = familyID
	m.scheduled[e.ID] = *e
	return e, nil
}

func (m *mockStore) ListScheduledExpenses(_ context.Context, familyID string) ([]domain.ScheduledExpense, error) {
	var out []domain.ScheduledExpense
	for _, v := range m.scheduled {
		if v.FamilyID == familyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) GetScheduledExpense(_ context.Context, familyID, id string) (*domain.ScheduledExpense, error) {
	v, ok := m.scheduled[id]
	if !ok || v.FamilyID != familyID {
		return nil, &domain.ErrNotFound{Resource: "scheduled expense", ID: id}
	}
	return &v, nil
}

func (m *mockStore) UpdateScheduledExpense(_ context.Context, _, id string, e *domain.ScheduledExpense) (*domain.ScheduledExpense, error) {
	if _, ok := m.scheduled[id]; !ok {
		return nil, &domain.ErrNotFound{Resource: "scheduled expense", ID: id}
	}
	m.scheduled[id] = *e
	return e, nil
}

func (m *mockStore) DeleteScheduledExpense(_ context.Context, _, id string) error {
	delete(m.scheduled, id)
	return nil
}

func (m *mockStore) AppendConfirmedPeriod(_ context.Context, familyID, id, periodKey string) (*domain.ScheduledExpense, error) {
	v, ok := m.scheduled[id]
	if !ok || v.FamilyID != familyID {
		return nil, &domain.ErrNotFound{Resource: "scheduled expense", ID: id}
	}
	for _, p := range v.ConfirmedPeriods {
		if p == periodKey {
			return nil, &domain.ErrDuplicate{Key: "confirm:" + id + ":" + periodKey}
		}
	}
	v.ConfirmedPeriods = append(v.ConfirmedPeriods, periodKey)
	m.scheduled[id] = v
	return &v, nil
}

func (m *mockStore) ListCategories(_ context.Context, familyID string) ([]domain.Category, error) {
	var out []domain.Category
	for _, v := range m.cats {
		if v.FamilyID == familyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) CreateCategory(_ context.Context, familyID string, c *domain.Category) (*domain.Category, error) {
	c.FamilyID = familyID
	m.cats[c.ID] = *c
	return c, nil
}

func (m *mockStore) SeedCategories(_ context.Context, familyID string, cats []domain.Category) error {
	for i := range cats {
		cats[i].FamilyID = familyID
		m.cats[cats[i].ID] = cats[i]
	}
	return nil
}

func (m *mockStore) Ping(context.Context) error { return nil }

const testFamily = "fam-1"

func newService(store *mockStore) *service.FinanceService {
	return service.NewFinanceService(
		store,
		cache.New[[]domain.Transaction](time.Minute),
		observability.NewMetrics(),
		zap.NewNop(),
		"PEN",
	)
}

// ============================================================
// Tests
// ============================================================

func TestCreateAccount_CreditAutoCreatesPaymentExpense(t *testing.T) {
	store := newMockStore()
	svc := newService(store)

	acc, err := svc.CreateAccount(context.Background(), testFamily, &domain.AccountRequest{
		Name:       "Visa Oro",
		Type:       domain.AccountCredit,
		ClosingDay: 25,
		PaymentDay: 5,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	if len(store.scheduled) != 1 {
		t.Fatalf("expected 1 auto scheduled expense, got %d", len(store.scheduled))
	}
	for _, e := range store.scheduled {
		if !e.Automatic {
			t.Error("expected automatic flag")
		}
		if e.CreditAccountID != acc.ID {
			t.Errorf("expected credit link to %s, got %s", acc.ID, e.CreditAccountID)
		}
		if e.DueDay != 5 {
			t.Errorf("expected due day from payment day, got %d", e.DueDay)
		}
	}
}

func TestCreateAccount_LoanUsesMonthlyPayment(t *testing.T) {
	store := newMockStore()
	svc := newService(store)

	_, err := svc.CreateAccount(context.Background(), testFamily, &domain.AccountRequest{
		Name:           "Préstamo auto",
		Type:           domain.AccountLoan,
		MonthlyPayment: 850,
		PaymentDay:     10,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	for _, e := range store.scheduled {
		if e.Amount != 850 {
			t.Errorf("expected static amount 850, got %v", e.Amount)
		}
		if e.CreditAccountID != "" {
			t.Error("loan expense must not carry a credit link")
		}
		if e.Category != "Vivienda" {
			t.Errorf("expected category Vivienda, got %s", e.Category)
		}
	}
}

func TestCreateAccount_CashHasNoPaymentExpense(t *testing.T) {
	store := newMockStore()
	svc := newService(store)

	if _, err := svc.CreateAccount(context.Background(), testFamily, &domain.AccountRequest{
		Name: "Efectivo",
		Type: domain.AccountCash,
	}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	if len(store.scheduled) != 0 {
		t.Errorf("expected no scheduled expense, got %d", len(store.scheduled))
	}
}

func TestCreateTransfer_PairsLegs(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	from, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "BCP", Type: domain.AccountBank})
	to, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "Efectivo", Type: domain.AccountCash})

	resp, err := svc.CreateTransfer(ctx, testFamily, &domain.TransferRequest{
		Date:          "2025-03-10",
		Amount:        400,
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
	})
	if err != nil {
		t.Fatalf("create transfer: %v", err)
	}

	if resp.Out.Type != domain.TxExpense || resp.In.Type != domain.TxIncome {
		t.Error("expected expense leg on source and income leg on destination")
	}
	if resp.Out.Amount != resp.In.Amount {
		t.Error("legs must carry equal amounts")
	}
	if resp.Out.TransferGroupID != resp.In.TransferGroupID || resp.Out.TransferGroupID == "" {
		t.Error("legs must share one transfer group id")
	}
	if len(store.txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(store.txs))
	}
}

func TestCreateTransfer_SameAccountRejected(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	acc, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "BCP", Type: domain.AccountBank})

	_, err := svc.CreateTransfer(ctx, testFamily, &domain.TransferRequest{
		Date: "2025-03-10", Amount: 100,
		FromAccountID: acc.ID, ToAccountID: acc.ID,
	})
	var ve *domain.ErrValidation
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteTransaction_RemovesWholeTransferGroup(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	from, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "BCP", Type: domain.AccountBank})
	to, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "Efectivo", Type: domain.AccountCash})
	resp, _ := svc.CreateTransfer(ctx, testFamily, &domain.TransferRequest{
		Date: "2025-03-10", Amount: 400,
		FromAccountID: from.ID, ToAccountID: to.ID,
	})

	if err := svc.DeleteTransaction(ctx, testFamily, resp.In.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.txs) != 0 {
		t.Errorf("expected both legs gone, %d transactions remain", len(store.txs))
	}
}

func TestUpdateTransaction_RecreatesTransferPair(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	from, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "BCP", Type: domain.AccountBank})
	to, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "Efectivo", Type: domain.AccountCash})
	resp, _ := svc.CreateTransfer(ctx, testFamily, &domain.TransferRequest{
		Date: "2025-03-10", Amount: 400,
		FromAccountID: from.ID, ToAccountID: to.ID,
	})

	updated, err := svc.UpdateTransaction(ctx, testFamily, resp.Out.ID, &domain.TransactionRequest{Amount: 550})
	if err != nil {
		t.Fatalf("update transfer leg: %v", err)
	}
	if updated.TransferGroupID != resp.TransferGroupID {
		t.Errorf("expected group id %s kept, got %s", resp.TransferGroupID, updated.TransferGroupID)
	}
	if len(store.txs) != 2 {
		t.Fatalf("expected 2 transactions after recreate, got %d", len(store.txs))
	}
	for _, tx := range store.txs {
		if tx.Amount != 550 {
			t.Errorf("expected both legs at 550, got %v", tx.Amount)
		}
		if tx.ID == resp.Out.ID || tx.ID == resp.In.ID {
			t.Error("expected fresh transaction ids after recreate")
		}
	}
}

func TestConfirmScheduledExpense_ExactlyOnce(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	acc, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "BCP", Type: domain.AccountBank})
	e, err := svc.CreateScheduledExpense(ctx, testFamily, &domain.ScheduledExpenseRequest{
		Description: "Alquiler",
		Amount:      1200,
		Category:    "Vivienda",
		DueDay:      1,
		AccountID:   acc.ID,
	})
	if err != nil {
		t.Fatalf("create scheduled: %v", err)
	}

	resp, err := svc.ConfirmScheduledExpense(ctx, testFamily, e.ID, &domain.ConfirmRequest{Year: 2025, Month: 3})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if resp.Transaction.Amount != 1200 || resp.Transaction.Type != domain.TxExpense {
		t.Errorf("unexpected transaction %+v", resp.Transaction)
	}
	if len(resp.Expense.ConfirmedPeriods) != 1 || resp.Expense.ConfirmedPeriods[0] != "2025-03" {
		t.Errorf("expected period 2025-03 recorded, got %v", resp.Expense.ConfirmedPeriods)
	}

	_, err = svc.ConfirmScheduledExpense(ctx, testFamily, e.ID, &domain.ConfirmRequest{Year: 2025, Month: 3})
	var dup *domain.ErrDuplicate
	if !errors.As(err, &dup) {
		t.Fatalf("expected duplicate error on second confirm, got %v", err)
	}
	if len(store.txs) != 1 {
		t.Errorf("expected exactly 1 transaction, got %d", len(store.txs))
	}

	// A different period confirms independently.
	if _, err := svc.ConfirmScheduledExpense(ctx, testFamily, e.ID, &domain.ConfirmRequest{Year: 2025, Month: 4}); err != nil {
		t.Fatalf("confirm next period: %v", err)
	}
}

func TestConfirmScheduledExpense_RejectsMissingYear(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	acc, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "BCP", Type: domain.AccountBank})
	e, _ := svc.CreateScheduledExpense(ctx, testFamily, &domain.ScheduledExpenseRequest{
		Description: "Alquiler", Amount: 1200, Category: "Vivienda", DueDay: 1, AccountID: acc.ID,
	})

	_, err := svc.ConfirmScheduledExpense(ctx, testFamily, e.ID, &domain.ConfirmRequest{Month: 3})
	var ve *domain.ErrValidation
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for zero year, got %v", err)
	}
	if len(store.txs) != 0 {
		t.Errorf("expected no transaction booked, got %d", len(store.txs))
	}
}

func TestDeleteMember_CascadesAndOrphans(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	mem, _ := svc.CreateMember(ctx, testFamily, &domain.MemberRequest{Name: "Ana", Role: domain.RolePrimary})
	cash, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{
		Name: "Efectivo Ana", Type: domain.AccountCash, MemberID: mem.ID,
	})
	bank, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{
		Name: "BCP Ana", Type: domain.AccountBank, MemberID: mem.ID,
	})
	tx, _ := svc.CreateTransaction(ctx, testFamily, &domain.TransactionRequest{
		Date: "2025-03-01", Amount: 100, Type: domain.TxExpense,
		Category: "Otros", MemberID: mem.ID, AccountID: bank.ID,
	})

	if err := svc.DeleteMember(ctx, testFamily, mem.ID); err != nil {
		t.Fatalf("delete member: %v", err)
	}

	if _, ok := store.accounts[cash.ID]; ok {
		t.Error("expected owned cash account to be cascade deleted")
	}
	if _, ok := store.accounts[bank.ID]; !ok {
		t.Error("bank account must survive member deletion")
	}
	got := store.txs[tx.ID]
	if got.MemberID != "" {
		t.Error("expected transaction member reference to be cleared")
	}
}

func TestRedeemInvite_SingleUse(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	inv, err := svc.IssueInvite(ctx, testFamily, &domain.MemberRequest{Name: "Luis", Role: domain.RoleContributor})
	if err != nil {
		t.Fatalf("issue invite: %v", err)
	}

	mem, err := svc.RedeemInvite(ctx, testFamily, inv.Code)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if mem.Name != "Luis" || mem.Role != domain.RoleContributor {
		t.Errorf("unexpected member %+v", mem)
	}

	if _, err := svc.RedeemInvite(ctx, testFamily, inv.Code); err == nil {
		t.Fatal("expected second redemption to fail")
	}
}

func TestGetSummary_BuildsComparison(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	acc, _ := svc.CreateAccount(ctx, testFamily, &domain.AccountRequest{Name: "BCP", Type: domain.AccountBank})
	mustTx := func(date, typ, cat string, amount float64) {
		t.Helper()
		if _, err := svc.CreateTransaction(ctx, testFamily, &domain.TransactionRequest{
			Date: date, Amount: amount, Type: typ, Category: cat, AccountID: acc.ID,
		}); err != nil {
			t.Fatalf("create tx: %v", err)
		}
	}
	mustTx("2025-02-10", domain.TxExpense, "Vivienda", 1000)
	mustTx("2025-03-05", domain.TxIncome, "Sueldo", 3000)
	mustTx("2025-03-12", domain.TxExpense, "Vivienda", 1500)

	sum, err := svc.GetSummary(ctx, testFamily, 2025, 3)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Current.Expenses != 1500 || sum.Previous.Expenses != 1000 {
		t.Errorf("unexpected stats cur=%v prev=%v", sum.Current.Expenses, sum.Previous.Expenses)
	}
	if sum.Comparison.Expenses.Percent != 50 {
		t.Errorf("expected expenses +50%%, got %v", sum.Comparison.Expenses.Percent)
	}
	if !sum.Comparison.Income.Infinite {
		t.Error("expected infinite income increase (0 -> 3000)")
	}
	if sum.Balances.Totals[domain.AccountBank] != 1500 {
		t.Errorf("expected bank balance 1500, got %v", sum.Balances.Totals[domain.AccountBank])
	}
}

func TestUpsertBudget_ReplacesSameTuple(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	if _, err := svc.UpsertBudget(ctx, testFamily, &domain.BudgetRequest{
		Category: "Alimentación", Year: 2025, Month: 3, Limit: 1000,
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.UpsertBudget(ctx, testFamily, &domain.BudgetRequest{
		Category: "Alimentación", Year: 2025, Month: 3, Limit: 1500,
	}); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	budgets, _ := store.ListBudgets(ctx, testFamily, 2025, 3)
	if len(budgets) != 1 {
		t.Fatalf("expected 1 budget for the tuple, got %d", len(budgets))
	}
	if budgets[0].Limit != 1500 {
		t.Errorf("expected replaced limit 1500, got %v", budgets[0].Limit)
	}
}

func TestListCategories_SeedsDefaults(t *testing.T) {
	store := newMockStore()
	svc := newService(store)

	cats, err := svc.ListCategories(context.Background(), testFamily)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("expected default categories to be seeded")
	}
}

func TestCreateCategory_SameNameDifferentType(t *testing.T) {
	store := newMockStore()
	svc := newService(store)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, testFamily, &domain.CategoryRequest{
		Name: "Regalos", Type: domain.TxExpense,
	}); err != nil {
		t.Fatalf("create expense category: %v", err)
	}

	// The same name is valid on the other side of the ledger.
	if _, err := svc.CreateCategory(ctx, testFamily, &domain.CategoryRequest{
		Name: "Regalos", Type: domain.TxIncome,
	}); err != nil {
		t.Fatalf("create income category with shared name: %v", err)
	}

	_, err := svc.CreateCategory(ctx, testFamily, &domain.CategoryRequest{
		Name: "Regalos", Type: domain.TxExpense,
	})
	var conflict *domain.ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict on duplicate (name, type), got %v", err)
	}
}
