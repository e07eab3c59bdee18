package ledger

import "github.com/finandev25-glitch/ControlFinan-sub000/internal/domain"

// Balance derives an account's balance from its transaction log.
//
// Asset accounts (cash, bank) grow with income and shrink with expenses.
// Liability accounts (credit, loan) invert the formula: the figure is the
// amount owed, so expenses increase it and payments (income) reduce it.
func Balance(acc *domain.Account, txs []domain.Transaction) float64 {
	var income, expense float64
	for i := range txs {
		if txs[i].AccountID != acc.ID {
			continue
		}
		switch txs[i].Type {
		case domain.TxIncome:
			income += txs[i].Amount
		case domain.TxExpense:
			expense += txs[i].Amount
		}
	}
	if acc.IsLiability() {
		return expense - income
	}
	return income - expense
}

// BalancesByType derives every account balance and groups totals per
// account type. Accounts with no activity report 0.
func BalancesByType(accounts []domain.Account, txs []domain.Transaction) domain.BalancesByTypeResponse {
	resp := domain.BalancesByTypeResponse{
		Totals:   make(map[string]float64),
		Accounts: make([]domain.AccountBalanceResponse, 0, len(accounts)),
	}
	for i := range accounts {
		acc := &accounts[i]
		bal := Balance(acc, txs)
		resp.Totals[acc.Type] += bal
		resp.Accounts = append(resp.Accounts, domain.AccountBalanceResponse{
			AccountID: acc.ID,
			Name:      acc.Name,
			Type:      acc.Type,
			Balance:   bal,
			Currency:  acc.Currency,
		})
	}
	return resp
}
