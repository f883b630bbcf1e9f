package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haynafi/Pennylog/internal/cli"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/money"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for a month",
		Long:  `Display the monthly income, expense, and savings totals, today's variable spending, and budget usage for the selected month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			period, err := periodFromFlags(cmd)
			if err != nil {
				return err
			}

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings := t.Settings()
			s := t.Stats(period, time.Now())
			sym := settings.CurrencySymbol

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s · %s", settings.AppName, period)))

			fmt.Printf("  Monthly Income    %s\n", cli.IncomeStyle.Render(money.Format(sym, s.MonthlyIncome)))
			fmt.Printf("  Daily Expense     %s\n", cli.ExpenseStyle.Render(money.Format(sym, s.DailyExpenses)))
			fmt.Printf("  Monthly Expense   %s\n", cli.ExpenseStyle.Render(money.Format(sym, s.MonthlyExpenses)))
			remainingStyle := cli.IncomeStyle
			if s.RemainingBudget < 0 {
				remainingStyle = cli.ExpenseStyle
			}
			fmt.Printf("  Remaining Budget  %s\n", remainingStyle.Render(money.Format(sym, s.RemainingBudget)))
			fmt.Printf("  Monthly Savings   %s\n", cli.IncomeStyle.Render(money.Format(sym, s.MonthlySavings)))

			fmt.Printf("\n  Fixed expenses: %d entries, variable: %d entries\n",
				len(s.FixedExpenses), len(s.VariableExpenses))

			if s.ActiveBudget > 0 {
				label := "Monthly"
				if settings.ExpenseFrequency == model.FrequencyDaily {
					label = "Daily"
				}
				fmt.Printf("\n  %s Budget Usage: %s / %s (%.0f%%)\n",
					label,
					money.Format(sym, s.CurrentExpenses),
					money.Format(sym, s.ActiveBudget),
					s.BudgetPercentage)

				const width = 30
				filled := int(s.ClampedBudgetPercentage() / 100 * width)
				barStyle := cli.BarFilledStyle
				if s.BudgetPercentage > 100 {
					barStyle = cli.BarOverStyle
				} else if s.BudgetPercentage > 75 {
					barStyle = cli.WarningStyle
				}
				fmt.Printf("  %s%s\n",
					barStyle.Render(strings.Repeat("█", filled)),
					cli.SubtleStyle.Render(strings.Repeat("░", width-filled)))

				if s.OverBudget() {
					fmt.Println("  " + cli.ExpenseStyle.Render(
						fmt.Sprintf("Over budget by %s", money.Format(sym, -s.FrequencyRemainingBudget))))
				} else {
					fmt.Println("  " + cli.IncomeStyle.Render(
						fmt.Sprintf("%s remaining", money.Format(sym, s.FrequencyRemainingBudget))))
				}
			}

			return nil
		},
	}

	addPeriodFlags(cmd)

	return cmd
}
