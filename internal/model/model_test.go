package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryID(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "income-1710498600000", NewEntryID(KindIncome, now))
	assert.Equal(t, "expense-1710498600000", NewEntryID(KindExpense, now))
	assert.Equal(t, "saving-1710498600000", NewEntryID(KindSaving, now))
}

func TestFinanceDataClone(t *testing.T) {
	data := FinanceData{
		Income: []IncomeEntry{{ID: "income-1", Amount: 100, Category: "Salary", Date: "2024-03-01"}},
	}

	clone := data.Clone()
	clone.Income[0].Amount = 999
	clone.Expenses = append(clone.Expenses, ExpenseEntry{ID: "expense-1"})

	assert.InDelta(t, 100.0, data.Income[0].Amount, 0.0001, "clone edits must not leak back")
	assert.Empty(t, data.Expenses)
}

func TestSettingsClone(t *testing.T) {
	s := DefaultSettings()

	clone := s.Clone()
	clone.Categories.Income = append(clone.Categories.Income, "Bonus")
	clone.AppName = "Other"

	assert.NotContains(t, s.Categories.Income, "Bonus")
	assert.Equal(t, "Pennylog", s.AppName)
}

func TestSettingsActiveBudget(t *testing.T) {
	s := DefaultSettings()
	s.DailyBudget = 50
	s.MonthlyBudget = 1200

	s.ExpenseFrequency = FrequencyDaily
	assert.InDelta(t, 50.0, s.ActiveBudget(), 0.0001)

	s.ExpenseFrequency = FrequencyMonthly
	assert.InDelta(t, 1200.0, s.ActiveBudget(), 0.0001)
}

func TestCategoriesGroupAccess(t *testing.T) {
	c := Categories{
		Income:          []string{"Salary"},
		Expense:         []string{"Food"},
		FixedExpense:    []string{"Rent"},
		VariableExpense: []string{"Dining"},
	}

	assert.Equal(t, []string{"Salary"}, c.Group(GroupIncome))
	assert.Equal(t, []string{"Rent"}, c.Group(GroupFixedExpense))
	assert.Nil(t, c.Group("unknown"))

	c.SetGroup(GroupVariableExpense, []string{"Dining", "Shopping"})
	assert.Equal(t, []string{"Dining", "Shopping"}, c.VariableExpense)
}

// The persisted schema carries no version marker, so the JSON field
// names are load-bearing: they must match what earlier sessions wrote.
func TestPersistedFieldNames(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)

	for _, field := range []string{
		`"appName"`, `"currency"`, `"currencySymbol"`, `"expenseFrequency"`,
		`"resetCycle"`, `"resetDate"`, `"categories"`,
		`"fixedExpense"`, `"variableExpense"`,
	} {
		assert.Contains(t, string(data), field)
	}

	raw, err := json.Marshal(FinanceData{
		Income:   []IncomeEntry{{ID: "income-1"}},
		Expenses: []ExpenseEntry{{ID: "expense-1", Type: ExpenseFixed, Frequency: FrequencyMonthly}},
		Savings:  []SavingEntry{{ID: "saving-1"}},
	})
	require.NoError(t, err)

	for _, field := range []string{`"income"`, `"expenses"`, `"savings"`, `"type"`, `"frequency"`} {
		assert.Contains(t, string(raw), field)
	}
}

// Values missing optional fields (e.g. budgets written by an older
// session) must load without error, leaving the zero values in place.
func TestSettingsTolerateMissingFields(t *testing.T) {
	raw := `{"appName":"Pennylog","currency":"USD","currencySymbol":"$",
		"expenseFrequency":"monthly","resetCycle":"monthly","resetDate":1,
		"categories":{"income":[],"expense":[],"fixedExpense":[],"variableExpense":[]}}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Zero(t, s.DailyBudget)
	assert.Zero(t, s.MonthlyBudget)
	assert.Zero(t, s.ActiveBudget())
}
