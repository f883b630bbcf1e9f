package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haynafi/Pennylog/internal/cli"
	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/settings"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage category lists",
		Long:  `List, add, and remove entries in the four category groups: income, expense, fixed, and variable.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories by group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cats := t.Settings().Categories

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, group := range model.CategoryGroups {
				fmt.Fprintln(w, cli.BoldStyle.Render(string(group)))
				list := cats.Group(group)
				if len(list) == 0 {
					fmt.Fprintln(w, cli.SubtleStyle.Render("  (none)"))
				}
				for i, name := range list {
					fmt.Fprintf(w, "  %d\t%s\n", i, name)
				}
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <group> <name>",
		Short: "Add a category to a group",
		Long:  `Append a category name to one of the groups (income, expense, fixed, variable). Names are trimmed; blank names are ignored.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			group, err := parseCategoryGroup(args[0])
			if err != nil {
				return err
			}

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			editor := settings.NewEditor(t.Settings())
			editor.AddCategory(group, args[1])
			if err := t.UpdateSettings(ctx, editor.Commit()); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("✓ Added %q to %s categories", args[1], group)))
			return nil
		},
	}
}

func removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <group> <index>",
		Short: "Remove a category from a group by index",
		Long:  `Remove the category at the given index (see 'categories list'). An out-of-range index is a no-op.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			group, err := parseCategoryGroup(args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index: %s", args[1])
			}

			t, store, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			editor := settings.NewEditor(t.Settings())
			editor.RemoveCategory(group, index)
			if err := t.UpdateSettings(ctx, editor.Commit()); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("✓ Removed %s category %d", group, index)))
			return nil
		},
	}
}
