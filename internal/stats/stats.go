// Package stats computes period-scoped statistics from finance data.
// Everything here is a pure function of its inputs: the same data,
// settings, period, and clock always produce the same Summary.
package stats

import (
	"sort"
	"time"

	"github.com/haynafi/Pennylog/internal/model"
)

// Period selects the (month, year) window for monthly aggregations.
// It is independent of the current wall-clock date.
type Period struct {
	Month time.Month
	Year  int
}

// ThisMonth returns the period containing now.
func ThisMonth(now time.Time) Period {
	return Period{Month: now.Month(), Year: now.Year()}
}

// String formats the period as e.g. "March 2024".
func (p Period) String() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}

// Previous returns the period one month earlier.
func (p Period) Previous() Period {
	t := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return Period{Month: t.Month(), Year: t.Year()}
}

// Next returns the period one month later.
func (p Period) Next() Period {
	t := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return Period{Month: t.Month(), Year: t.Year()}
}

// parseDate parses an entry date in local time. Entry dates are ISO
// date strings; full timestamps are tolerated for values written by
// other tools.
func parseDate(dateStr string) (time.Time, bool) {
	if t, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t.Local(), true
	}
	return time.Time{}, false
}

// InPeriod reports whether the entry date falls in the given calendar
// month and year, compared in local time. Unparseable dates are outside
// every period.
func InPeriod(dateStr string, p Period) bool {
	t, ok := parseDate(dateStr)
	if !ok {
		return false
	}
	return t.Month() == p.Month && t.Year() == p.Year
}

// SameDay reports whether the entry date is the same calendar day as
// today, compared in local time.
func SameDay(dateStr string, today time.Time) bool {
	t, ok := parseDate(dateStr)
	if !ok {
		return false
	}
	return t.Day() == today.Day() && t.Month() == today.Month() && t.Year() == today.Year()
}

// Summary holds every derived figure for one period. Sums are exact
// float64 addition with no currency rounding, matching the persisted
// amounts.
type Summary struct {
	Period Period

	MonthlyIncome   float64
	MonthlyExpenses float64
	DailyExpenses   float64
	MonthlySavings  float64

	// ActiveBudget is the budget for the configured expense frequency;
	// zero means no budget configured.
	ActiveBudget float64
	// CurrentExpenses is the daily or monthly expense figure matching
	// the configured frequency.
	CurrentExpenses float64
	// RemainingBudget is monthly income minus current expenses. It is
	// income-based and independent of ActiveBudget.
	RemainingBudget float64
	// FrequencyRemainingBudget is ActiveBudget minus current expenses.
	// Negative means over budget.
	FrequencyRemainingBudget float64
	// BudgetPercentage is the raw, unclamped usage percentage; zero
	// when no budget is configured.
	BudgetPercentage float64

	// Period-filtered entry lists, sorted newest first for display.
	Income           []model.IncomeEntry
	Expenses         []model.ExpenseEntry
	FixedExpenses    []model.ExpenseEntry
	VariableExpenses []model.ExpenseEntry
	Savings          []model.SavingEntry
}

// OverBudget reports whether current expenses exceed a configured budget.
func (s Summary) OverBudget() bool {
	return s.ActiveBudget > 0 && s.FrequencyRemainingBudget < 0
}

// ClampedBudgetPercentage clamps usage to [0, 100] for progress display.
// Over-budget detection uses the raw BudgetPercentage instead.
func (s Summary) ClampedBudgetPercentage() float64 {
	switch {
	case s.BudgetPercentage < 0:
		return 0
	case s.BudgetPercentage > 100:
		return 100
	default:
		return s.BudgetPercentage
	}
}

// Compute derives the full Summary for a period. The daily expense
// figure covers only variable expenses dated today: fixed expenses are
// assumed to recur monthly and are excluded from the daily view.
func Compute(data model.FinanceData, settings model.Settings, period Period, today time.Time) Summary {
	s := Summary{Period: period}

	for _, e := range data.Income {
		if InPeriod(e.Date, period) {
			s.MonthlyIncome += e.Amount
			s.Income = append(s.Income, e)
		}
	}

	for _, e := range data.Expenses {
		if SameDay(e.Date, today) && e.Type == model.ExpenseVariable {
			s.DailyExpenses += e.Amount
		}
		if !InPeriod(e.Date, period) {
			continue
		}
		s.MonthlyExpenses += e.Amount
		s.Expenses = append(s.Expenses, e)
		switch e.Type {
		case model.ExpenseFixed:
			s.FixedExpenses = append(s.FixedExpenses, e)
		case model.ExpenseVariable:
			s.VariableExpenses = append(s.VariableExpenses, e)
		}
	}

	for _, e := range data.Savings {
		if InPeriod(e.Date, period) {
			s.MonthlySavings += e.Amount
			s.Savings = append(s.Savings, e)
		}
	}

	s.ActiveBudget = settings.ActiveBudget()
	if settings.ExpenseFrequency == model.FrequencyDaily {
		s.CurrentExpenses = s.DailyExpenses
	} else {
		s.CurrentExpenses = s.MonthlyExpenses
	}
	s.RemainingBudget = s.MonthlyIncome - s.CurrentExpenses
	s.FrequencyRemainingBudget = s.ActiveBudget - s.CurrentExpenses
	if s.ActiveBudget > 0 {
		s.BudgetPercentage = s.CurrentExpenses / s.ActiveBudget * 100
	}

	sortNewestFirst(s.Income, func(e model.IncomeEntry) string { return e.Date })
	sortNewestFirst(s.Expenses, func(e model.ExpenseEntry) string { return e.Date })
	sortNewestFirst(s.FixedExpenses, func(e model.ExpenseEntry) string { return e.Date })
	sortNewestFirst(s.VariableExpenses, func(e model.ExpenseEntry) string { return e.Date })
	sortNewestFirst(s.Savings, func(e model.SavingEntry) string { return e.Date })

	return s
}

func sortNewestFirst[T any](entries []T, date func(T) string) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, _ := parseDate(date(entries[i]))
		tj, _ := parseDate(date(entries[j]))
		return ti.After(tj)
	})
}
