package domain

// ============================================================
// Summary / Dashboard views
// ============================================================

// MonthStats aggregates one calendar month of activity.
type MonthStats struct {
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	Income     float64            `json:"income"`
	Expenses   float64            `json:"expenses"`
	Net        float64            `json:"net"`
	ByCategory map[string]float64 `json:"byCategory"`
}

// TrendDelta compares a figure against the previous month. When the
// previous value is 0 and the current is positive the percent change is
// undefined; Infinite marks that case and Percent is meaningless.
type TrendDelta struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Delta    float64 `json:"delta"`
	Percent  float64 `json:"percent"`
	Infinite bool    `json:"infinite,omitempty"`
}

// Comparison holds the month-over-month trend for the headline figures.
type Comparison struct {
	Income   TrendDelta `json:"income"`
	Expenses TrendDelta `json:"expenses"`
	Net      TrendDelta `json:"net"`
}

// DashboardSummary is the single-call view the dashboard renders from.
type DashboardSummary struct {
	MemberCount int                    `json:"memberCount"`
	Current     MonthStats             `json:"current"`
	Previous    MonthStats             `json:"previous"`
	Comparison  Comparison             `json:"comparison"`
	Balances    BalancesByTypeResponse `json:"balances"`
	Budgets     []BudgetStatus         `json:"budgets"`
	Scheduled   []ScheduledExpenseView `json:"scheduled"`
	Recent      []Transaction          `json:"recent"`
}
