package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haynafi/Pennylog/internal/model"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.Local)

func TestAddIncome(t *testing.T) {
	t.Run("valid entry gets id and date", func(t *testing.T) {
		data := model.NewFinanceData()

		out, entry, err := AddIncome(data, model.IncomeEntry{
			Amount:   1500,
			Category: "Salary",
		}, testNow)
		require.NoError(t, err)

		assert.Equal(t, model.NewEntryID(model.KindIncome, testNow), entry.ID)
		assert.Equal(t, "2024-03-15", entry.Date, "blank date defaults to today")
		assert.Len(t, out.Income, 1)
		assert.Empty(t, data.Income, "input value is not mutated")
	})

	t.Run("missing amount rejected", func(t *testing.T) {
		_, _, err := AddIncome(model.NewFinanceData(), model.IncomeEntry{Category: "Salary"}, testNow)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "amount", vErr.Field)
	})

	t.Run("NaN amount rejected", func(t *testing.T) {
		_, _, err := AddIncome(model.NewFinanceData(), model.IncomeEntry{Amount: math.NaN(), Category: "Salary"}, testNow)
		require.Error(t, err)
	})

	t.Run("missing category rejected", func(t *testing.T) {
		_, _, err := AddIncome(model.NewFinanceData(), model.IncomeEntry{Amount: 100}, testNow)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "category", vErr.Field)
	})

	t.Run("negative amount accepted as a correction", func(t *testing.T) {
		out, entry, err := AddIncome(model.NewFinanceData(), model.IncomeEntry{
			Amount:   -250,
			Category: "Salary",
		}, testNow)
		require.NoError(t, err)
		assert.Equal(t, -250.0, entry.Amount)
		assert.Len(t, out.Income, 1)
	})
}

func TestAddExpense(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		out, entry, err := AddExpense(model.NewFinanceData(), model.ExpenseEntry{
			Amount:   50,
			Category: "Groceries",
			Date:     "2024-03-10",
		}, testNow)
		require.NoError(t, err)

		assert.Equal(t, model.ExpenseVariable, entry.Type)
		assert.Equal(t, model.FrequencyDaily, entry.Frequency)
		assert.Equal(t, "2024-03-10", entry.Date, "explicit date kept")
		assert.Len(t, out.Expenses, 1)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		_, _, err := AddExpense(model.NewFinanceData(), model.ExpenseEntry{
			Amount:   50,
			Category: "Groceries",
			Type:     "sometimes",
		}, testNow)
		require.Error(t, err)
	})

	t.Run("missing category rejected", func(t *testing.T) {
		_, _, err := AddExpense(model.NewFinanceData(), model.ExpenseEntry{Amount: 50}, testNow)
		require.Error(t, err)
	})
}

func TestAddSaving(t *testing.T) {
	t.Run("no category required", func(t *testing.T) {
		out, entry, err := AddSaving(model.NewFinanceData(), model.SavingEntry{Amount: 200}, testNow)
		require.NoError(t, err)
		assert.Contains(t, entry.ID, "saving-")
		assert.Len(t, out.Savings, 1)
	})

	t.Run("missing amount rejected", func(t *testing.T) {
		_, _, err := AddSaving(model.NewFinanceData(), model.SavingEntry{}, testNow)
		require.Error(t, err)
	})
}

func TestDeleteEntry(t *testing.T) {
	seed := func(t *testing.T) (model.FinanceData, model.IncomeEntry) {
		t.Helper()
		data := model.NewFinanceData()
		data, income, err := AddIncome(data, model.IncomeEntry{Amount: 100, Category: "Salary"}, testNow)
		require.NoError(t, err)
		data, _, err = AddExpense(data, model.ExpenseEntry{Amount: 40, Category: "Food"}, testNow)
		require.NoError(t, err)
		data, _, err = AddSaving(data, model.SavingEntry{Amount: 25}, testNow)
		require.NoError(t, err)
		return data, income
	}

	t.Run("delete after add removes only that entry", func(t *testing.T) {
		data, income := seed(t)

		out := DeleteEntry(data, model.KindIncome, income.ID)

		assert.Empty(t, out.Income)
		assert.Len(t, out.Expenses, 1, "other collections unchanged")
		assert.Len(t, out.Savings, 1, "other collections unchanged")
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		data, income := seed(t)

		out := DeleteEntry(data, model.KindIncome, income.ID)
		out = DeleteEntry(out, model.KindIncome, income.ID)

		assert.Empty(t, out.Income)
		assert.Len(t, out.Expenses, 1)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		data, _ := seed(t)

		out := DeleteEntry(data, model.KindExpense, "expense-404")

		assert.Len(t, out.Expenses, 1)
	})
}

func TestClearAll(t *testing.T) {
	out := ClearAll()

	assert.NotNil(t, out.Income)
	assert.NotNil(t, out.Expenses)
	assert.NotNil(t, out.Savings)
	assert.Empty(t, out.Income)
	assert.Empty(t, out.Expenses)
	assert.Empty(t, out.Savings)
}
