// Package settings provides a staged editor over the Settings document.
// Edits accumulate in a draft and only become visible when committed,
// so a cancelled editing session leaves the committed value untouched.
package settings

import (
	"strconv"
	"strings"

	"github.com/haynafi/Pennylog/internal/model"
)

// Editor stages settings edits. The draft starts as a deep copy of the
// committed settings; Commit returns it as the new committed value in a
// single assignment.
type Editor struct {
	committed model.Settings
	draft     model.Settings
}

// NewEditor creates an editor over the currently committed settings.
func NewEditor(committed model.Settings) *Editor {
	return &Editor{
		committed: committed,
		draft:     committed.Clone(),
	}
}

// Draft returns a copy of the staged settings.
func (e *Editor) Draft() model.Settings {
	return e.draft.Clone()
}

// SetAppName stages a new app name.
func (e *Editor) SetAppName(name string) {
	e.draft.AppName = name
}

// SetCurrency stages a new currency code and symbol.
func (e *Editor) SetCurrency(code, symbol string) {
	e.draft.Currency = code
	e.draft.CurrencySymbol = symbol
}

// SetExpenseFrequency stages a new expense tracking frequency.
func (e *Editor) SetExpenseFrequency(f model.Frequency) {
	e.draft.ExpenseFrequency = f
}

// SetResetCycle stages a new reset cycle ("weekly" or "monthly").
func (e *Editor) SetResetCycle(cycle string) {
	e.draft.ResetCycle = cycle
}

// SetResetDate stages the budget reset day of month. An unparseable
// value falls back to 1 rather than failing.
func (e *Editor) SetResetDate(raw string) {
	day, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || day < 1 {
		day = 1
	}
	e.draft.ResetDate = day
}

// SetDailyBudget stages the daily budget. Zero clears it.
func (e *Editor) SetDailyBudget(amount float64) {
	e.draft.DailyBudget = amount
}

// SetMonthlyBudget stages the monthly budget. Zero clears it.
func (e *Editor) SetMonthlyBudget(amount float64) {
	e.draft.MonthlyBudget = amount
}

// AddCategory appends a name to a category group. Names are trimmed;
// blank names are ignored. Duplicates are allowed and insertion order
// is preserved.
func (e *Editor) AddCategory(group model.CategoryGroup, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	list := e.draft.Categories.Group(group)
	e.draft.Categories.SetGroup(group, append(list, name))
}

// RemoveCategory removes the element at index from a group. An index
// out of range is a no-op.
func (e *Editor) RemoveCategory(group model.CategoryGroup, index int) {
	list := e.draft.Categories.Group(group)
	if index < 0 || index >= len(list) {
		return
	}
	e.draft.Categories.SetGroup(group, append(list[:index:index], list[index+1:]...))
}

// Commit returns the draft as the new committed settings and keeps
// editing from that point.
func (e *Editor) Commit() model.Settings {
	e.committed = e.draft.Clone()
	return e.committed.Clone()
}

// Discard drops the draft, re-initializing it from the committed
// settings.
func (e *Editor) Discard() {
	e.draft = e.committed.Clone()
}
