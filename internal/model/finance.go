package model

// FinanceData holds the three entry collections. Collections are
// independent and insertion-ordered; there are no cross-references.
type FinanceData struct {
	Income   []IncomeEntry  `json:"income"`
	Expenses []ExpenseEntry `json:"expenses"`
	Savings  []SavingEntry  `json:"savings"`
}

// NewFinanceData returns an empty FinanceData with all three collections
// allocated, so the persisted form is always three arrays rather than nulls.
func NewFinanceData() FinanceData {
	return FinanceData{
		Income:   []IncomeEntry{},
		Expenses: []ExpenseEntry{},
		Savings:  []SavingEntry{},
	}
}

// Clone returns a deep copy. Mutations go through the ledger, which
// produces a new value; callers can treat FinanceData as immutable
// between commits.
func (d FinanceData) Clone() FinanceData {
	out := FinanceData{
		Income:   make([]IncomeEntry, len(d.Income)),
		Expenses: make([]ExpenseEntry, len(d.Expenses)),
		Savings:  make([]SavingEntry, len(d.Savings)),
	}
	copy(out.Income, d.Income)
	copy(out.Expenses, d.Expenses)
	copy(out.Savings, d.Savings)
	return out
}
