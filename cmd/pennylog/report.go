package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haynafi/Pennylog/internal/cli"
	"github.com/haynafi/Pennylog/internal/report"
	"github.com/haynafi/Pennylog/internal/tui"
)

func reportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a printable monthly report",
		Long:  `Render the month's statistics and entry tables as a standalone HTML document, suitable for printing or saving as PDF from a browser.`,
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

			if output == "" {
				output = fmt.Sprintf("pennylog-report-%04d-%02d.html", period.Year, int(period.Month))
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create report file: %w", err)
			}
			defer f.Close()

			if err := report.Write(f, t.Data(), t.Settings(), period, time.Now()); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("✓ Report written to %s", output)))
			return nil
		},
	}

	addPeriodFlags(cmd)
	cmd.Flags().StringVar(&output, "output", "", "output file (default pennylog-report-YYYY-MM.html)")

	return cmd
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long:  `Browse statistics and entries month by month in a full-screen terminal view.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, store, err := openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(t)
		},
	}
}
