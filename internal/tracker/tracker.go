// Package tracker owns the application state: one FinanceData and one
// Settings document, loaded from the store once and mirrored back after
// every committed mutation.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/haynafi/Pennylog/internal/ledger"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/stats"
	"github.com/haynafi/Pennylog/internal/storage"
)

// Tracker is the top-level controller. Components read state through
// its accessors and write through its mutation methods; they never hold
// mutable references of their own.
type Tracker struct {
	store    storage.Store
	data     model.FinanceData
	settings model.Settings
	now      func() time.Time
}

// Open loads both documents from the store, substituting defaults when
// a key is absent or unreadable. The load happens exactly once, before
// any mutation, so a freshly loaded value is never clobbered by the
// in-memory default.
func Open(ctx context.Context, store storage.Store) *Tracker {
	t := &Tracker{
		store:    store,
		data:     model.NewFinanceData(),
		settings: model.DefaultSettings(),
		now:      time.Now,
	}
	storage.LoadOrDefault(ctx, store, storage.KeyFinanceData, &t.data)
	storage.LoadOrDefault(ctx, store, storage.KeyFinanceSettings, &t.settings)
	return t
}

// Data returns a copy of the current finance data.
func (t *Tracker) Data() model.FinanceData {
	return t.data.Clone()
}

// Settings returns a copy of the current settings.
func (t *Tracker) Settings() model.Settings {
	return t.settings.Clone()
}

// Stats computes the summary for a period against the current state.
func (t *Tracker) Stats(period stats.Period, today time.Time) stats.Summary {
	return stats.Compute(t.data, t.settings, period, today)
}

// AddIncome validates, stores, and persists a new income entry.
func (t *Tracker) AddIncome(ctx context.Context, entry model.IncomeEntry) (model.IncomeEntry, error) {
	data, added, err := ledger.AddIncome(t.data, entry, t.now())
	if err != nil {
		return entry, err
	}
	return added, t.commit(ctx, data)
}

// AddExpense validates, stores, and persists a new expense entry.
func (t *Tracker) AddExpense(ctx context.Context, entry model.ExpenseEntry) (model.ExpenseEntry, error) {
	data, added, err := ledger.AddExpense(t.data, entry, t.now())
	if err != nil {
		return entry, err
	}
	return added, t.commit(ctx, data)
}

// AddSaving validates, stores, and persists a new saving entry.
func (t *Tracker) AddSaving(ctx context.Context, entry model.SavingEntry) (model.SavingEntry, error) {
	data, added, err := ledger.AddSaving(t.data, entry, t.now())
	if err != nil {
		return entry, err
	}
	return added, t.commit(ctx, data)
}

// DeleteEntry removes an entry by id. A missing id is a no-op; the
// state is still written back so deletes are always safe to repeat.
func (t *Tracker) DeleteEntry(ctx context.Context, kind model.EntryKind, id string) error {
	return t.commit(ctx, ledger.DeleteEntry(t.data, kind, id))
}

// ClearAll resets all three collections to empty.
func (t *Tracker) ClearAll(ctx context.Context) error {
	return t.commit(ctx, ledger.ClearAll())
}

// UpdateSettings replaces and persists the settings document. This is
// the commit target for the settings editor.
func (t *Tracker) UpdateSettings(ctx context.Context, s model.Settings) error {
	t.settings = s.Clone()
	if err := t.store.Save(ctx, storage.KeyFinanceSettings, t.settings); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	slog.Debug("settings saved", "appName", s.AppName, "currency", s.Currency)
	return nil
}

// commit replaces the in-memory document and mirrors it to the store.
func (t *Tracker) commit(ctx context.Context, data model.FinanceData) error {
	t.data = data
	if err := t.store.Save(ctx, storage.KeyFinanceData, t.data); err != nil {
		return fmt.Errorf("failed to persist finance data: %w", err)
	}
	slog.Debug("finance data saved",
		"income", len(data.Income),
		"expenses", len(data.Expenses),
		"savings", len(data.Savings))
	return nil
}
