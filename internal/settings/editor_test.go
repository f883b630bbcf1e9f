package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haynafi/Pennylog/internal/model"
)

func TestEditorStagesWithoutCommitting(t *testing.T) {
	committed := model.DefaultSettings()
	editor := NewEditor(committed)

	editor.SetAppName("My Money")
	editor.SetMonthlyBudget(2000)

	assert.Equal(t, "My Money", editor.Draft().AppName)
	assert.Equal(t, "Pennylog", committed.AppName, "committed value untouched until commit")
}

func TestEditorCommit(t *testing.T) {
	editor := NewEditor(model.DefaultSettings())
	editor.SetExpenseFrequency(model.FrequencyMonthly)
	editor.SetCurrency("USD", "$")

	out := editor.Commit()

	assert.Equal(t, model.FrequencyMonthly, out.ExpenseFrequency)
	assert.Equal(t, "USD", out.Currency)
	assert.Equal(t, "$", out.CurrencySymbol)

	// Editing continues from the committed state.
	editor.SetAppName("Changed")
	editor.Discard()
	assert.Equal(t, "Pennylog", editor.Draft().AppName)
	assert.Equal(t, model.FrequencyMonthly, editor.Draft().ExpenseFrequency)
}

func TestEditorDiscard(t *testing.T) {
	editor := NewEditor(model.DefaultSettings())
	editor.SetAppName("Scratch")
	editor.AddCategory(model.GroupIncome, "Bonus")

	editor.Discard()

	draft := editor.Draft()
	assert.Equal(t, "Pennylog", draft.AppName)
	assert.NotContains(t, draft.Categories.Income, "Bonus")
}

func TestAddCategory(t *testing.T) {
	t.Run("trims and appends", func(t *testing.T) {
		editor := NewEditor(model.DefaultSettings())
		editor.AddCategory(model.GroupIncome, "  Bonus  ")

		income := editor.Draft().Categories.Income
		assert.Equal(t, "Bonus", income[len(income)-1])
	})

	t.Run("blank name ignored", func(t *testing.T) {
		editor := NewEditor(model.DefaultSettings())
		before := editor.Draft().Categories.Income

		editor.AddCategory(model.GroupIncome, "   ")

		assert.Equal(t, before, editor.Draft().Categories.Income)
	})

	t.Run("duplicates allowed", func(t *testing.T) {
		editor := NewEditor(model.DefaultSettings())
		editor.AddCategory(model.GroupExpense, "Food")

		expense := editor.Draft().Categories.Expense
		assert.Equal(t, "Food", expense[0])
		assert.Equal(t, "Food", expense[len(expense)-1])
	})
}

func TestRemoveCategory(t *testing.T) {
	t.Run("add then remove restores the list", func(t *testing.T) {
		editor := NewEditor(model.DefaultSettings())
		before := editor.Draft().Categories.Income

		editor.AddCategory(model.GroupIncome, "Bonus")
		editor.RemoveCategory(model.GroupIncome, len(before))

		assert.Equal(t, before, editor.Draft().Categories.Income)
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		editor := NewEditor(model.DefaultSettings())
		before := editor.Draft().Categories.Expense

		editor.RemoveCategory(model.GroupExpense, 99)
		editor.RemoveCategory(model.GroupExpense, -1)

		assert.Equal(t, before, editor.Draft().Categories.Expense)
	})
}

func TestSetResetDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "valid day", raw: "15", want: 15},
		{name: "unparseable falls back to 1", raw: "abc", want: 1},
		{name: "empty falls back to 1", raw: "", want: 1},
		{name: "zero falls back to 1", raw: "0", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor := NewEditor(model.DefaultSettings())
			editor.SetResetDate(tt.raw)
			assert.Equal(t, tt.want, editor.Draft().ResetDate)
		})
	}
}
