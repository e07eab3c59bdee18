package domain

// ============================================================
// Budgets
// ============================================================

// Budget is a spending ceiling for one (category, year, month) tuple.
// At most one budget exists per tuple; writes use upsert semantics.
type Budget struct {
	ID       string  `json:"id"`
	FamilyID string  `json:"family_id"`
	Category string  `json:"category"`
	Year     int     `json:"year"`
	Month    int     `json:"month"` // 1-12
	Limit    float64 `json:"limit_amount"`
}

// BudgetRequest is the payload to create or replace a budget.
type BudgetRequest struct {
	Category string  `json:"category"`
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Limit    float64 `json:"limit"`
}

// Budget consumption tiers, derived from progress percent.
const (
	BudgetOnTrack = "on_track" // <= 50%
	BudgetWarning = "warning"  // 50-85%
	BudgetOver    = "over"     // > 85%
)

// BudgetStatus is the derived consumption view for one budget.
type BudgetStatus struct {
	Category        string  `json:"category"`
	Limit           float64 `json:"limit"`
	Spent           float64 `json:"spent"`
	Remaining       float64 `json:"remaining"`
	ProgressPercent float64 `json:"progressPercent"`
	Tier            string  `json:"tier"`
}
