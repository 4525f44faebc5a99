package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/spice-explain/internal/cli"
	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/model"
	"github.com/Veraticus/spice-explain/internal/view"
	"github.com/spf13/cobra"
)

func viewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "views",
		Aliases: []string{"view"},
		Short:   "Manage saved view filters",
	}

	cmd.AddCommand(viewsListCmd())
	cmd.AddCommand(viewsShowCmd())
	cmd.AddCommand(viewsCreateCmd())
	cmd.AddCommand(viewsDeleteCmd())

	return cmd
}

func viewsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List views with explanations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			views, err := db.GetViews(ctx)
			if err != nil {
				return fmt.Errorf("failed to get views: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				_, err := fmt.Fprintln(out, cli.FormatInfo("No views found"))
				return err
			}

			return writeViewTable(out, views, view.NewExplainer())
		},
	}
}

func viewsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a view and the clauses of its filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			v, err := db.GetViewByName(ctx, args[0])
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("View %q not found", args[0]), err)
				}
				return err
			}

			exp := view.Describe(v.Filter)

			var b strings.Builder
			if v.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", v.Description)
			}
			fmt.Fprintf(&b, "Filter:      %s\n", v.Filter)
			fmt.Fprintf(&b, "Explanation: %s\n", exp.Text)
			b.WriteString(strings.TrimRight(cli.RenderFilterDetails(exp), "\n"))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(v.Name, b.String()))
			return err
		},
	}
}

func viewsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Save a view filter",
		Example: `  spice views create --name business --filter 'tag("business") && months >= 6'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			name, _ := cmd.Flags().GetString("name")
			filter, _ := cmd.Flags().GetString("filter")
			description, _ := cmd.Flags().GetString("description")

			if name == "" || filter == "" {
				return fmt.Errorf("name and filter are required")
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			v := &model.View{Name: name, Filter: filter, Description: description}
			if err := db.CreateView(ctx, v); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					return common.NewUserError(fmt.Sprintf("A view named %q already exists", name), err)
				}
				return fmt.Errorf("failed to create view: %w", err)
			}

			common.LogInfo("Created view", common.Fields{"id": v.ID, "name": v.Name})

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Created view %q", v.Name))); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cli.RenderExplanation(v.Filter, view.ExplainViewFilter(v.Filter)))
			return err
		},
	}

	cmd.Flags().String("name", "", "View name (required)")
	cmd.Flags().String("filter", "", "Filter expression (required)")
	cmd.Flags().String("description", "", "What the view is for")

	return cmd
}

func viewsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.DeleteView(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("View %q not found", args[0]), err)
				}
				return fmt.Errorf("failed to delete view: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted view %q", args[0])))
			return err
		},
	}
}
