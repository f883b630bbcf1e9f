package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haynafi/Pennylog/internal/cli"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/money"
	"github.com/haynafi/Pennylog/internal/settings"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change app settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			s := t.Settings()

			fmt.Println(cli.TitleStyle.Render("Settings"))
			fmt.Printf("  App name           %s\n", s.AppName)
			fmt.Printf("  Currency           %s (%s)\n", s.Currency, s.CurrencySymbol)
			fmt.Printf("  Expense frequency  %s\n", s.ExpenseFrequency)
			fmt.Printf("  Reset cycle        %s (day %d)\n", s.ResetCycle, s.ResetDate)
			if s.DailyBudget > 0 {
				fmt.Printf("  Daily budget       %s\n", money.Format(s.CurrencySymbol, s.DailyBudget))
			} else {
				fmt.Printf("  Daily budget       %s\n", cli.SubtleStyle.Render("(not set)"))
			}
			if s.MonthlyBudget > 0 {
				fmt.Printf("  Monthly budget     %s\n", money.Format(s.CurrencySymbol, s.MonthlyBudget))
			} else {
				fmt.Printf("  Monthly budget     %s\n", cli.SubtleStyle.Render("(not set)"))
			}

			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		appName       string
		currency      string
		symbol        string
		frequency     string
		resetCycle    string
		resetDate     string
		dailyBudget   float64
		monthlyBudget float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Stage one or more settings changes and save them atomically.
Only flags you pass are changed; everything else keeps its current value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			editor := settings.NewEditor(t.Settings())

			if cmd.Flags().Changed("app-name") {
				editor.SetAppName(appName)
			}
			if cmd.Flags().Changed("currency") || cmd.Flags().Changed("symbol") {
				cur := t.Settings().Currency
				sym := t.Settings().CurrencySymbol
				if cmd.Flags().Changed("currency") {
					cur = currency
				}
				if cmd.Flags().Changed("symbol") {
					sym = symbol
				}
				editor.SetCurrency(cur, sym)
			}
			if cmd.Flags().Changed("frequency") {
				f := model.Frequency(frequency)
				if f != model.FrequencyDaily && f != model.FrequencyMonthly {
					return fmt.Errorf("invalid frequency: %s (want daily or monthly)", frequency)
				}
				editor.SetExpenseFrequency(f)
			}
			if cmd.Flags().Changed("reset-cycle") {
				if resetCycle != "weekly" && resetCycle != "monthly" {
					return fmt.Errorf("invalid reset cycle: %s (want weekly or monthly)", resetCycle)
				}
				editor.SetResetCycle(resetCycle)
			}
			if cmd.Flags().Changed("reset-date") {
				editor.SetResetDate(resetDate)
			}
			if cmd.Flags().Changed("daily-budget") {
				editor.SetDailyBudget(dailyBudget)
			}
			if cmd.Flags().Changed("monthly-budget") {
				editor.SetMonthlyBudget(monthlyBudget)
			}

			if err := t.UpdateSettings(ctx, editor.Commit()); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render("✓ Settings saved"))
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "display name for the app")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code (e.g. IDR, USD)")
	cmd.Flags().StringVar(&symbol, "symbol", "", "currency symbol (e.g. Rp, $)")
	cmd.Flags().StringVar(&frequency, "frequency", "", "expense tracking frequency (daily, monthly)")
	cmd.Flags().StringVar(&resetCycle, "reset-cycle", "", "budget reset cycle (weekly, monthly)")
	cmd.Flags().StringVar(&resetDate, "reset-date", "", "budget reset day of month (1-31)")
	cmd.Flags().Float64Var(&dailyBudget, "daily-budget", 0, "daily budget amount (0 clears)")
	cmd.Flags().Float64Var(&monthlyBudget, "monthly-budget", 0, "monthly budget amount (0 clears)")

	return cmd
}
