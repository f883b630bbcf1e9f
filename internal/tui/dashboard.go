// Package tui implements the interactive dashboard: the stats grid,
// budget usage bar, and entry tables for one period at a time.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haynafi/Pennylog/internal/cli"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/money"
	"github.com/haynafi/Pennylog/internal/stats"
	"github.com/haynafi/Pennylog/internal/tracker"
)

const budgetBarWidth = 40

// Model is the bubbletea model for the dashboard. It is a read-only
// view: every period change recomputes the summary from the tracker.
type Model struct {
	tracker *tracker.Tracker
	keys    KeyMap
	period  stats.Period
	summary stats.Summary
	now     func() time.Time
	width   int
}

// NewModel creates a dashboard showing the current month.
func NewModel(t *tracker.Tracker) Model {
	m := Model{
		tracker: t,
		keys:    DefaultKeyMap(),
		now:     time.Now,
	}
	m.period = stats.ThisMonth(m.now())
	m.summary = t.Stats(m.period, m.now())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevMonth):
			m.period = m.period.Previous()
			m.summary = m.tracker.Stats(m.period, m.now())
		case key.Matches(msg, m.keys.NextMonth):
			m.period = m.period.Next()
			m.summary = m.tracker.Stats(m.period, m.now())
		case key.Matches(msg, m.keys.Today):
			m.period = stats.ThisMonth(m.now())
			m.summary = m.tracker.Stats(m.period, m.now())
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	settings := m.tracker.Settings()
	sym := settings.CurrencySymbol
	s := m.summary

	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render(settings.AppName))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(m.period.String()))
	b.WriteString("\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Monthly Income", money.Format(sym, s.MonthlyIncome), cli.IncomeStyle),
		statCard("Daily Expense", money.Format(sym, s.DailyExpenses), cli.ExpenseStyle),
		statCard("Monthly Expense", money.Format(sym, s.MonthlyExpenses), cli.ExpenseStyle),
		statCard("Remaining", money.Format(sym, s.RemainingBudget), remainingStyle(s.RemainingBudget)),
		statCard("Savings", money.Format(sym, s.MonthlySavings), cli.IncomeStyle),
	)
	b.WriteString(cards)
	b.WriteString("\n")

	if s.ActiveBudget > 0 {
		b.WriteString(m.budgetView(settings, s))
		b.WriteString("\n")
	}

	b.WriteString(entryTables(sym, s))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("←/→ change month · t current month · q quit"))
	b.WriteString("\n")

	return b.String()
}

func statCard(label, value string, style lipgloss.Style) string {
	return cli.BoxStyle.Render(
		cli.SubtleStyle.Render(label) + "\n" + style.Bold(true).Render(value))
}

func remainingStyle(amount float64) lipgloss.Style {
	if amount >= 0 {
		return cli.IncomeStyle
	}
	return cli.ExpenseStyle
}

// budgetView renders the usage bar. The bar clamps at 100%; the
// over/under message uses the raw figures.
func (m Model) budgetView(settings model.Settings, s stats.Summary) string {
	label := "Monthly Budget Usage"
	if settings.ExpenseFrequency == model.FrequencyDaily {
		label = "Daily Budget Usage"
	}

	filled := int(s.ClampedBudgetPercentage() / 100 * budgetBarWidth)
	barStyle := cli.BarFilledStyle
	if s.BudgetPercentage > 100 {
		barStyle = cli.BarOverStyle
	} else if s.BudgetPercentage > 75 {
		barStyle = cli.WarningStyle
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		cli.SubtleStyle.Render(strings.Repeat("░", budgetBarWidth-filled))

	sym := settings.CurrencySymbol
	var status string
	if s.FrequencyRemainingBudget >= 0 {
		status = cli.IncomeStyle.Render(money.Format(sym, s.FrequencyRemainingBudget) + " remaining")
	} else {
		status = cli.ExpenseStyle.Render("Over budget by " + money.Format(sym, -s.FrequencyRemainingBudget))
	}

	return fmt.Sprintf("%s  %s / %s\n%s\n%s\n",
		cli.BoldStyle.Render(label),
		money.Format(sym, s.CurrentExpenses),
		money.Format(sym, s.ActiveBudget),
		bar,
		status)
}

func entryTables(sym string, s stats.Summary) string {
	var b strings.Builder

	b.WriteString(cli.BoldStyle.Render("Income"))
	b.WriteString("\n")
	if len(s.Income) == 0 {
		b.WriteString(cli.SubtleStyle.Render("  no entries") + "\n")
	}
	for _, e := range s.Income {
		fmt.Fprintf(&b, "  %s  %-14s %-20s %s\n",
			e.Date, e.Category, e.Description, cli.IncomeStyle.Render(money.Format(sym, e.Amount)))
	}

	b.WriteString(cli.BoldStyle.Render("Expenses"))
	b.WriteString("\n")
	if len(s.Expenses) == 0 {
		b.WriteString(cli.SubtleStyle.Render("  no entries") + "\n")
	}
	for _, e := range s.Expenses {
		fmt.Fprintf(&b, "  %s  %-8s %-14s %-20s %s\n",
			e.Date, e.Type, e.Category, e.Description, cli.ExpenseStyle.Render(money.Format(sym, e.Amount)))
	}

	b.WriteString(cli.BoldStyle.Render("Savings"))
	b.WriteString("\n")
	if len(s.Savings) == 0 {
		b.WriteString(cli.SubtleStyle.Render("  no entries") + "\n")
	}
	for _, e := range s.Savings {
		fmt.Fprintf(&b, "  %s  %-20s %s\n",
			e.Date, e.Description, cli.IncomeStyle.Render(money.Format(sym, e.Amount)))
	}

	return b.String()
}

// Run starts the dashboard program and blocks until the user quits.
func Run(t *tracker.Tracker) error {
	p := tea.NewProgram(NewModel(t), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
