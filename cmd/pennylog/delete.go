package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haynafi/Pennylog/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <income|expense|saving> <id>",
		Short: "Delete an entry by id",
		Long:  `Delete the entry with the given id from its collection. Deleting an id that does not exist is a no-op.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := t.DeleteEntry(ctx, kind, args[1]); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("✓ Deleted %s entry %s", kind, args[1])))
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all income, expense, and saving entries",
		Long:  `Reset all three collections to empty. Settings are kept. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print(cli.WarningStyle.Render("This permanently deletes all entries. Continue? [y/N] "))
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Println("Canceled.")
					return nil
				}
			}

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := t.ClearAll(ctx); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render("✓ All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}
