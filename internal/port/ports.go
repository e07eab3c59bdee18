// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"
)

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// FinanceStore defines all data operations of the finance backend.
// Implemented by the Supabase adapter (or any other persistence layer).
type FinanceStore interface {
	// Members
	CreateMember(ctx context.Context, familyID string, m *domain.Member) (*domain.Member, error)
	ListMembers(ctx context.Context, familyID string) ([]domain.Member, error)
	GetMember(ctx context.Context, familyID, memberID string) (*domain.Member, error)
	UpdateMember(ctx context.Context, familyID, memberID string, m *domain.Member) (*domain.Member, error)
	DeleteMember(ctx context.Context, familyID, memberID string) error

	// Member invites
	CreateInvite(ctx context.Context, familyID string, inv *domain.MemberInvite) (*domain.MemberInvite, error)
	ListOpenInvites(ctx context.Context, familyID string) ([]domain.MemberInvite, error)
	MarkInviteRedeemed(ctx context.Context, inviteID string) error

	// Accounts
	CreateAccount(ctx context.Context, familyID string, a *domain.Account) (*domain.Account, error)
	ListAccounts(ctx context.Context, familyID string) ([]domain.Account, error)
	GetAccount(ctx context.Context, familyID, accountID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, familyID, accountID string, a *domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, familyID, accountID string) error

	// Transactions
	CreateTransaction(ctx context.Context, familyID string, tx *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, familyID string) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, familyID, txID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, familyID, txID string, tx *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, familyID, txID string) error
	DeleteTransferGroup(ctx context.Context, familyID, groupID string) error
	ClearTransactionMember(ctx context.Context, familyID, memberID string) error

	// Budgets
	UpsertBudget(ctx context.Context, familyID string, b *domain.Budget) (*domain.Budget, error)
	ListBudgets(ctx context.Context, familyID string, year, month int) ([]domain.Budget, error)
	DeleteBudget(ctx context.Context, familyID, budgetID string) error

	// Scheduled expenses
	CreateScheduledExpense(ctx context.Context, familyID string, e *domain.ScheduledExpense) (*domain.ScheduledExpense, error)
	ListScheduledExpenses(ctx context.Context, familyID string) ([]domain.ScheduledExpense, error)
	GetScheduledExpense(ctx context.Context, familyID, expenseID string) (*domain.ScheduledExpense, error)
	UpdateScheduledExpense(ctx context.Context, familyID, expenseID string, e *domain.ScheduledExpense) (*domain.ScheduledExpense, error)
	DeleteScheduledExpense(ctx context.Context, familyID, expenseID string) error
	// AppendConfirmedPeriod atomically appends a period key to the
	// expense's confirmed list. It fails with ErrDuplicate when the key is
	// already present, even under concurrent confirmations.
	AppendConfirmedPeriod(ctx context.Context, familyID, expenseID, periodKey string) (*domain.ScheduledExpense, error)

	// Categories
	ListCategories(ctx context.Context, familyID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, familyID string, c *domain.Category) (*domain.Category, error)
	SeedCategories(ctx context.Context, familyID string, cats []domain.Category) error

	// Ping verifies connectivity for health checks.
	Ping(ctx context.Context) error
}
