// Package ledger implements the entry lifecycle: validation, id
// assignment, and add/delete/clear over the three collections. Every
// operation is a whole-value transform: the input FinanceData is never
// mutated and callers receive a new value.
package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/haynafi/Pennylog/internal/model"
)

// ValidationError describes a rejected entry. The entry is never added;
// no partial state is created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// validateAmount rejects non-numeric and absent amounts. Zero means the
// amount was never provided (an unset flag); negative amounts are
// legitimate corrections and pass through into the sums.
func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &ValidationError{Field: "amount", Reason: "must be a number"}
	}
	if amount == 0 {
		return &ValidationError{Field: "amount", Reason: "is required"}
	}
	return nil
}

// normalizeDate defaults a blank date to today, keeping the ISO date
// form the collections are stored in.
func normalizeDate(date string, now time.Time) string {
	if date == "" {
		return now.Format(time.DateOnly)
	}
	return date
}

// AddIncome validates and appends an income entry, assigning its id.
// Returns the new FinanceData and the entry as stored.
func AddIncome(data model.FinanceData, entry model.IncomeEntry, now time.Time) (model.FinanceData, model.IncomeEntry, error) {
	if err := validateAmount(entry.Amount); err != nil {
		return data, entry, err
	}
	if entry.Category == "" {
		return data, entry, &ValidationError{Field: "category", Reason: "is required"}
	}
	entry.ID = model.NewEntryID(model.KindIncome, now)
	entry.Date = normalizeDate(entry.Date, now)

	out := data.Clone()
	out.Income = append(out.Income, entry)
	return out, entry, nil
}

// AddExpense validates and appends an expense entry, assigning its id.
// Type defaults to variable and frequency to daily when left blank.
func AddExpense(data model.FinanceData, entry model.ExpenseEntry, now time.Time) (model.FinanceData, model.ExpenseEntry, error) {
	if err := validateAmount(entry.Amount); err != nil {
		return data, entry, err
	}
	if entry.Category == "" {
		return data, entry, &ValidationError{Field: "category", Reason: "is required"}
	}
	if entry.Type == "" {
		entry.Type = model.ExpenseVariable
	}
	if entry.Type != model.ExpenseFixed && entry.Type != model.ExpenseVariable {
		return data, entry, &ValidationError{Field: "type", Reason: `must be "fixed" or "variable"`}
	}
	if entry.Frequency == "" {
		entry.Frequency = model.FrequencyDaily
	}
	if entry.Frequency != model.FrequencyDaily && entry.Frequency != model.FrequencyMonthly {
		return data, entry, &ValidationError{Field: "frequency", Reason: `must be "daily" or "monthly"`}
	}
	entry.ID = model.NewEntryID(model.KindExpense, now)
	entry.Date = normalizeDate(entry.Date, now)

	out := data.Clone()
	out.Expenses = append(out.Expenses, entry)
	return out, entry, nil
}

// AddSaving validates and appends a saving entry, assigning its id.
// Savings have no category.
func AddSaving(data model.FinanceData, entry model.SavingEntry, now time.Time) (model.FinanceData, model.SavingEntry, error) {
	if err := validateAmount(entry.Amount); err != nil {
		return data, entry, err
	}
	entry.ID = model.NewEntryID(model.KindSaving, now)
	entry.Date = normalizeDate(entry.Date, now)

	out := data.Clone()
	out.Savings = append(out.Savings, entry)
	return out, entry, nil
}

// DeleteEntry removes the entry with the given id from the kind's
// collection. A missing id is a no-op, not an error, so deletes are
// idempotent. The other two collections are untouched.
func DeleteEntry(data model.FinanceData, kind model.EntryKind, id string) model.FinanceData {
	out := data.Clone()
	switch kind {
	case model.KindIncome:
		out.Income = deleteByID(out.Income, id, func(e model.IncomeEntry) string { return e.ID })
	case model.KindExpense:
		out.Expenses = deleteByID(out.Expenses, id, func(e model.ExpenseEntry) string { return e.ID })
	case model.KindSaving:
		out.Savings = deleteByID(out.Savings, id, func(e model.SavingEntry) string { return e.ID })
	}
	return out
}

func deleteByID[T any](entries []T, id string, idOf func(T) string) []T {
	for i, e := range entries {
		if idOf(e) == id {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}

// ClearAll returns a FinanceData with three empty collections.
func ClearAll() model.FinanceData {
	return model.NewFinanceData()
}
