package domain

import "time"

// ============================================================
// Transactions
// ============================================================

// Transaction types. Amounts are positive scalars; direction is carried by
// the type. Transfers are a pair of rows sharing a transfer group id.
const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// Transaction is an atomic monetary event on an account.
type Transaction struct {
	ID          string    `json:"id"`
	FamilyID    string    `json:"family_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	// MemberID is empty when the member was deleted (soft orphaning) or the
	// transaction is shared.
	MemberID  string `json:"member_id,omitempty"`
	AccountID string `json:"account_id"`
	// TransferGroupID links the two legs of a transfer. Empty otherwise.
	TransferGroupID string    `json:"transfer_group_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionRequest is the payload to create an income or expense.
type TransactionRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD or RFC3339
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	MemberID    string  `json:"memberId,omitempty"`
	AccountID   string  `json:"accountId"`
}

// TransferRequest is the payload to move money between two accounts.
// It materialises as exactly two transactions under one group id.
type TransferRequest struct {
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	MemberID      string  `json:"memberId,omitempty"`
}

// TransferResponse returns both legs of a created transfer.
type TransferResponse struct {
	TransferGroupID string       `json:"transferGroupId"`
	Out             *Transaction `json:"out"`
	In              *Transaction `json:"in"`
}
