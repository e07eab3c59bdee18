package domain

import "time"

// ============================================================
// Accounts (Cajas)
// ============================================================

// Account types. Credit and loan accounts are liabilities: their balance
// grows with expenses and shrinks with payments.
const (
	AccountCash   = "cash"
	AccountBank   = "bank"
	AccountCredit = "credit"
	AccountLoan   = "loan"
)

// Account is a money container ("caja"). Balance is never stored on the
// row; it is always derived from the transaction log.
type Account struct {
	ID       string `json:"id"`
	FamilyID string `json:"family_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	// MemberID is the owning member. Empty for shared/general cash boxes.
	MemberID string `json:"member_id,omitempty"`
	Currency string `json:"currency"`

	// Bank / credit fields
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	CardLast4     string `json:"card_last4,omitempty"`

	// Credit fields
	CreditLimit float64 `json:"credit_limit,omitempty"`
	ClosingDay  int     `json:"closing_day,omitempty"`
	PaymentDay  int     `json:"payment_day,omitempty"`

	// Loan fields
	LoanPrincipal  float64 `json:"loan_principal,omitempty"`
	MonthlyPayment float64 `json:"monthly_payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsLiability reports whether the account type carries inverted balance
// semantics (expenses increase the amount owed).
func (a *Account) IsLiability() bool {
	return a.Type == AccountCredit || a.Type == AccountLoan
}

// ValidAccountType reports whether t is one of the closed account type set.
func ValidAccountType(t string) bool {
	switch t {
	case AccountCash, AccountBank, AccountCredit, AccountLoan:
		return true
	}
	return false
}

// AccountRequest is the payload to create an account.
type AccountRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	MemberID       string  `json:"memberId,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	BankName       string  `json:"bankName,omitempty"`
	AccountNumber  string  `json:"accountNumber,omitempty"`
	CardLast4      string  `json:"cardLast4,omitempty"`
	CreditLimit    float64 `json:"creditLimit,omitempty"`
	ClosingDay     int     `json:"closingDay,omitempty"`
	PaymentDay     int     `json:"paymentDay,omitempty"`
	LoanPrincipal  float64 `json:"loanPrincipal,omitempty"`
	MonthlyPayment float64 `json:"monthlyPayment,omitempty"`
}

// AccountBalanceResponse is returned by the derived balance endpoint.
type AccountBalanceResponse struct {
	AccountID string  `json:"accountId"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
}

// BalancesByTypeResponse groups derived balances by account type.
type BalancesByTypeResponse struct {
	Totals   map[string]float64       `json:"totals"`
	Accounts []AccountBalanceResponse `json:"accounts"`
}

// BillingCycleResponse describes a credit account's current and next cycle.
type BillingCycleResponse struct {
	AccountID    string  `json:"accountId"`
	ClosingDay   int     `json:"closingDay"`
	CurrentStart string  `json:"currentStart"`
	CurrentEnd   string  `json:"currentEnd"`
	NextStart    string  `json:"nextStart"`
	NextEnd      string  `json:"nextEnd"`
	CycleTotal   float64 `json:"cycleTotal"`
}
