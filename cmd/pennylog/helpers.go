package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haynafi/Pennylog/internal/common"
	"github.com/haynafi/Pennylog/internal/config"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/stats"
	"github.com/haynafi/Pennylog/internal/storage"
	"github.com/haynafi/Pennylog/internal/tracker"
)

// initStore builds the configured storage backend with proper path
// expansion. The cookie jar file is the default; sqlite is available
// for users who prefer it.
func initStore() (storage.Store, error) {
	backend := viper.GetString("storage.backend")
	if backend == "" {
		backend = "cookie"
	}

	path := viper.GetString("storage.path")
	switch backend {
	case "cookie":
		if path == "" {
			path = "$HOME/.local/share/pennylog/cookies.txt"
		}
		return storage.NewCookieJarStore(config.ExpandPath(path))
	case "sqlite":
		if path == "" {
			path = "$HOME/.local/share/pennylog/pennylog.db"
		}
		return storage.NewSQLiteStore(config.ExpandPath(path))
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", common.ErrInvalidConfig, backend)
	}
}

// openTracker loads both documents from the configured store. Callers
// must Close the returned store.
func openTracker(ctx context.Context) (*tracker.Tracker, storage.Store, error) {
	store, err := initStore()
	if err != nil {
		return nil, nil, err
	}
	return tracker.Open(ctx, store), store, nil
}

// addPeriodFlags registers the --month/--year pair used by every
// period-scoped command.
func addPeriodFlags(cmd *cobra.Command) {
	now := time.Now()
	cmd.Flags().Int("month", int(now.Month()), "month to show (1-12)")
	cmd.Flags().Int("year", now.Year(), "year to show")
}

// periodFromFlags resolves the selected period, defaulting to the
// current month.
func periodFromFlags(cmd *cobra.Command) (stats.Period, error) {
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	if month < 1 || month > 12 {
		return stats.Period{}, fmt.Errorf("invalid month: %d (want 1-12)", month)
	}
	return stats.Period{Month: time.Month(month), Year: year}, nil
}

// parseKind maps a command argument to an entry kind. Plural forms are
// accepted since list output uses them.
func parseKind(arg string) (model.EntryKind, error) {
	switch arg {
	case "income":
		return model.KindIncome, nil
	case "expense", "expenses":
		return model.KindExpense, nil
	case "saving", "savings":
		return model.KindSaving, nil
	default:
		return "", fmt.Errorf("unknown entry kind: %s (want income, expense, or saving)", arg)
	}
}

// parseCategoryGroup maps a command argument to a settings category group.
func parseCategoryGroup(arg string) (model.CategoryGroup, error) {
	switch arg {
	case "income":
		return model.GroupIncome, nil
	case "expense":
		return model.GroupExpense, nil
	case "fixed", "fixedExpense":
		return model.GroupFixedExpense, nil
	case "variable", "variableExpense":
		return model.GroupVariableExpense, nil
	default:
		return "", fmt.Errorf("unknown category group: %s (want income, expense, fixed, or variable)", arg)
	}
}
