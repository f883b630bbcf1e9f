package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/haynafi/Pennylog/internal/cli"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/money"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [income|expenses|savings]",
		Short: "List entries for a month",
		Long:  `Display the entries of one collection (or all three) for the selected month, newest first.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			period, err := periodFromFlags(cmd)
			if err != nil {
				return err
			}

			var only model.EntryKind
			if len(args) == 1 {
				only, err = parseKind(args[0])
				if err != nil {
					return err
				}
			}

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			summary := t.Stats(period, time.Now())
			sym := t.Settings().CurrencySymbol

			fmt.Println(cli.TitleStyle.Render(period.String()))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			if only == "" || only == model.KindIncome {
				fmt.Fprintln(w, cli.BoldStyle.Render("Income"))
				if len(summary.Income) == 0 {
					fmt.Fprintln(w, cli.SubtleStyle.Render("  (none)"))
				}
				for _, e := range summary.Income {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
						e.ID, e.Date, e.Category, e.Description, money.Format(sym, e.Amount))
				}
			}

			if only == "" || only == model.KindExpense {
				fmt.Fprintln(w, cli.BoldStyle.Render("Expenses"))
				if len(summary.Expenses) == 0 {
					fmt.Fprintln(w, cli.SubtleStyle.Render("  (none)"))
				}
				for _, e := range summary.Expenses {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
						e.ID, e.Date, e.Type, e.Category, e.Description, money.Format(sym, e.Amount))
				}
			}

			if only == "" || only == model.KindSaving {
				fmt.Fprintln(w, cli.BoldStyle.Render("Savings"))
				if len(summary.Savings) == 0 {
					fmt.Fprintln(w, cli.SubtleStyle.Render("  (none)"))
				}
				for _, e := range summary.Savings {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
						e.ID, e.Date, e.Description, money.Format(sym, e.Amount))
				}
			}

			return nil
		},
	}

	addPeriodFlags(cmd)

	return cmd
}
