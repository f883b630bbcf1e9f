package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haynafi/Pennylog/internal/cli"
	"github.com/haynafi/Pennylog/internal/common"
	"github.com/haynafi/Pennylog/internal/ledger"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/money"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income, expense, or saving entry",
	}

	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(addSavingCmd())

	return cmd
}

func addIncomeCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Add an income entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := t.AddIncome(ctx, model.IncomeEntry{
				Amount:      amount,
				Category:    category,
				Date:        date,
				Description: description,
			})
			if err != nil {
				return userError(err)
			}

			sym := t.Settings().CurrencySymbol
			fmt.Println(cli.IncomeStyle.Render(
				fmt.Sprintf("✓ Added income %s (%s) [%s]", money.Format(sym, entry.Amount), entry.Category, entry.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "entry amount (required)")
	cmd.Flags().StringVar(&category, "category", "", "income category (required)")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "optional note")

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		expenseType string
		frequency   string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Add an expense entry",
		Long:  `Add an expense entry. Expenses are fixed (rent, insurance) or variable (groceries, dining); only variable expenses dated today count toward the daily figure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := t.AddExpense(ctx, model.ExpenseEntry{
				Amount:      amount,
				Category:    category,
				Type:        model.ExpenseType(expenseType),
				Frequency:   model.Frequency(frequency),
				Date:        date,
				Description: description,
			})
			if err != nil {
				return userError(err)
			}

			sym := t.Settings().CurrencySymbol
			fmt.Println(cli.ExpenseStyle.Render(
				fmt.Sprintf("✓ Added %s expense %s (%s) [%s]", entry.Type, money.Format(sym, entry.Amount), entry.Category, entry.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "entry amount (required)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&expenseType, "type", "variable", "expense type (fixed, variable)")
	cmd.Flags().StringVar(&frequency, "frequency", "daily", "expense frequency (daily, monthly)")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "optional note")

	return cmd
}

func addSavingCmd() *cobra.Command {
	var (
		amount      float64
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "saving",
		Short: "Add a saving entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := t.AddSaving(ctx, model.SavingEntry{
				Amount:      amount,
				Date:        date,
				Description: description,
			})
			if err != nil {
				return userError(err)
			}

			sym := t.Settings().CurrencySymbol
			fmt.Println(cli.IncomeStyle.Render(
				fmt.Sprintf("✓ Added saving %s [%s]", money.Format(sym, entry.Amount), entry.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "entry amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "optional note")

	return cmd
}

// userError rewraps validation failures as plain user-facing messages;
// anything else passes through unchanged.
func userError(err error) error {
	var vErr *ledger.ValidationError
	if errors.As(err, &vErr) {
		return common.NewUserError("please fill in all required fields", err)
	}
	return err
}
