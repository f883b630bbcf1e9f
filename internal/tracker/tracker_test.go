package tracker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/stats"
	"github.com/haynafi/Pennylog/internal/storage"
)

func newTestTracker(t *testing.T) (*Tracker, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookies.txt")
	store, err := storage.NewCookieJarStore(path)
	require.NoError(t, err)
	return Open(context.Background(), store), path
}

func reopen(t *testing.T, path string) *Tracker {
	t.Helper()
	store, err := storage.NewCookieJarStore(path)
	require.NoError(t, err)
	return Open(context.Background(), store)
}

func TestOpenWithEmptyStoreUsesDefaults(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.Empty(t, tr.Data().Income)
	assert.Equal(t, "Pennylog", tr.Settings().AppName)
	assert.Equal(t, model.FrequencyDaily, tr.Settings().ExpenseFrequency)
}

func TestMutationsPersistAcrossSessions(t *testing.T) {
	ctx := context.Background()
	tr, path := newTestTracker(t)

	income, err := tr.AddIncome(ctx, model.IncomeEntry{Amount: 1000, Category: "Salary", Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = tr.AddExpense(ctx, model.ExpenseEntry{Amount: 40, Category: "Food", Date: "2024-03-02"})
	require.NoError(t, err)

	tr2 := reopen(t, path)
	data := tr2.Data()
	require.Len(t, data.Income, 1)
	assert.Equal(t, income.ID, data.Income[0].ID)
	assert.Len(t, data.Expenses, 1)
}

func TestDeletePersists(t *testing.T) {
	ctx := context.Background()
	tr, path := newTestTracker(t)

	income, err := tr.AddIncome(ctx, model.IncomeEntry{Amount: 1000, Category: "Salary"})
	require.NoError(t, err)
	require.NoError(t, tr.DeleteEntry(ctx, model.KindIncome, income.ID))

	// Deleting again is safe.
	require.NoError(t, tr.DeleteEntry(ctx, model.KindIncome, income.ID))

	tr2 := reopen(t, path)
	assert.Empty(t, tr2.Data().Income)
}

func TestClearAllPersists(t *testing.T) {
	ctx := context.Background()
	tr, path := newTestTracker(t)

	_, err := tr.AddSaving(ctx, model.SavingEntry{Amount: 100})
	require.NoError(t, err)
	require.NoError(t, tr.ClearAll(ctx))

	tr2 := reopen(t, path)
	assert.Empty(t, tr2.Data().Savings)
}

func TestUpdateSettingsPersists(t *testing.T) {
	ctx := context.Background()
	tr, path := newTestTracker(t)

	s := tr.Settings()
	s.AppName = "Household"
	s.MonthlyBudget = 2500
	require.NoError(t, tr.UpdateSettings(ctx, s))

	tr2 := reopen(t, path)
	assert.Equal(t, "Household", tr2.Settings().AppName)
	assert.InDelta(t, 2500.0, tr2.Settings().MonthlyBudget, 0.0001)
}

func TestValidationFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	tr, path := newTestTracker(t)

	_, err := tr.AddIncome(ctx, model.IncomeEntry{Category: "Salary"})
	require.Error(t, err)

	assert.Empty(t, tr.Data().Income, "no partial state on validation failure")
	tr2 := reopen(t, path)
	assert.Empty(t, tr2.Data().Income)
}

func TestStatsReflectCurrentState(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	now := time.Now()
	_, err := tr.AddExpense(ctx, model.ExpenseEntry{
		Amount:   75,
		Category: "Groceries",
		Type:     model.ExpenseVariable,
		Date:     now.Format(time.DateOnly),
	})
	require.NoError(t, err)

	summary := tr.Stats(stats.ThisMonth(now), now)
	assert.InDelta(t, 75.0, summary.MonthlyExpenses, 0.0001)
	assert.InDelta(t, 75.0, summary.DailyExpenses, 0.0001)
}
