package domain

// ============================================================
// Categories
// ============================================================

// Category classifies transactions. Categories are seeded per family on
// first use and can be extended afterwards.
type Category struct {
	ID       string `json:"id"`
	FamilyID string `json:"family_id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // income or expense
	Icon     string `json:"icon,omitempty"`
}

// CategoryRequest is the payload to create a category.
type CategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon,omitempty"`
}

// DefaultCategories returns the seed set for a new family.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Vivienda", Type: TxExpense, Icon: "home"},
		{Name: "Alimentación", Type: TxExpense, Icon: "cart"},
		{Name: "Transporte", Type: TxExpense, Icon: "car"},
		{Name: "Servicios", Type: TxExpense, Icon: "bolt"},
		{Name: "Salud", Type: TxExpense, Icon: "heart"},
		{Name: "Educación", Type: TxExpense, Icon: "book"},
		{Name: "Entretenimiento", Type: TxExpense, Icon: "film"},
		{Name: "Deudas", Type: TxExpense, Icon: "card"},
		{Name: "Otros", Type: TxExpense, Icon: "dots"},
		{Name: "Sueldo", Type: TxIncome, Icon: "briefcase"},
		{Name: "Negocio", Type: TxIncome, Icon: "store"},
		{Name: "Otros ingresos", Type: TxIncome, Icon: "plus"},
	}
}
