package domain

import "time"

// ============================================================
// Scheduled Expenses (gastos programados)
// ============================================================

// ScheduledExpense is a recurring monthly obligation. Confirming a period
// turns it into a real transaction and records the period key; a period is
// confirmed at most once.
type ScheduledExpense struct {
	ID          string `json:"id"`
	FamilyID    string `json:"family_id"`
	Description string `json:"description"`
	// Amount may be 0 when the effective amount is computed live
	// (credit-card payoff expenses).
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	DueDay   int     `json:"due_day"`
	MemberID string  `json:"member_id,omitempty"`
	// AccountID is the account the confirmed payment comes out of.
	AccountID string `json:"account_id"`
	// Automatic marks expenses synthesised on account creation.
	Automatic bool `json:"automatic"`
	// CreditAccountID links a "pay off this card" expense to its credit
	// account. Empty for plain expenses.
	CreditAccountID string `json:"credit_account_id,omitempty"`
	// ConfirmedPeriods holds "YYYY-MM" keys already turned into transactions.
	ConfirmedPeriods []string  `json:"confirmed_periods"`
	CreatedAt        time.Time `json:"created_at"`
}

// IsCreditCardPayment reports whether the expense payoff amount tracks a
// credit account's billing cycle.
func (e *ScheduledExpense) IsCreditCardPayment() bool {
	return e.CreditAccountID != ""
}

// ScheduledExpenseRequest is the payload to create a scheduled expense.
type ScheduledExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	DueDay      int     `json:"dueDay"`
	MemberID    string  `json:"memberId,omitempty"`
	AccountID   string  `json:"accountId"`
}

// ScheduledExpenseView is the projected view of one expense for a period.
type ScheduledExpenseView struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	DueDay          int     `json:"dueDay"`
	AccountID       string  `json:"accountId"`
	MemberID        string  `json:"memberId,omitempty"`
	Automatic       bool    `json:"automatic"`
	CreditCard      bool    `json:"creditCard"`
	EffectiveAmount float64 `json:"effectiveAmount"`
	Confirmed       bool    `json:"confirmed"`
}

// ConfirmRequest carries optional overrides when confirming a period.
type ConfirmRequest struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Date      string  `json:"date,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	AccountID string  `json:"accountId,omitempty"`
}

// ConfirmResponse returns the transaction created by a confirmation and the
// updated scheduled expense.
type ConfirmResponse struct {
	Transaction *Transaction      `json:"transaction"`
	Expense     *ScheduledExpense `json:"expense"`
}
