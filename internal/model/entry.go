// Package model defines the domain types for the finance tracker.
package model

import (
	"fmt"
	"time"
)

// EntryKind tags which collection an entry belongs to.
type EntryKind string

const (
	// KindIncome represents income entries.
	KindIncome EntryKind = "income"
	// KindExpense represents expense entries.
	KindExpense EntryKind = "expense"
	// KindSaving represents saving entries.
	KindSaving EntryKind = "saving"
)

// ExpenseType distinguishes fixed from variable expenses.
type ExpenseType string

const (
	// ExpenseFixed represents recurring expenses like rent or insurance.
	ExpenseFixed ExpenseType = "fixed"
	// ExpenseVariable represents discretionary expenses like groceries.
	ExpenseVariable ExpenseType = "variable"
)

// Frequency is the cadence used for expense tracking and budgets.
type Frequency string

const (
	// FrequencyDaily tracks expenses against a daily budget.
	FrequencyDaily Frequency = "daily"
	// FrequencyMonthly tracks expenses against a monthly budget.
	FrequencyMonthly Frequency = "monthly"
)

// IncomeEntry is a single income transaction.
type IncomeEntry struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// ExpenseEntry is a single expense transaction.
type ExpenseEntry struct {
	ID          string      `json:"id"`
	Amount      float64     `json:"amount"`
	Category    string      `json:"category"`
	Type        ExpenseType `json:"type"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Frequency   Frequency   `json:"frequency"`
}

// SavingEntry is a single saving transaction.
type SavingEntry struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// NewEntryID generates an entry id from its kind and creation time.
// Ids are unique per collection; two entries of the same kind created in
// the same millisecond collide, which matches the persisted schema and is
// an accepted limitation of the format.
func NewEntryID(kind EntryKind, now time.Time) string {
	return fmt.Sprintf("%s-%d", kind, now.UnixMilli())
}
