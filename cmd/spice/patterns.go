package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/spice-explain/internal/cli"
	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/config"
	"github.com/Veraticus/spice-explain/internal/model"
	"github.com/Veraticus/spice-explain/internal/pattern"
	"github.com/spf13/cobra"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern", "rules"},
		Short:   "Manage stored categorization patterns",
		Long: `Manage the catalogue of categorization patterns. Every listing shows each
pattern next to its plain-English explanation.`,
	}

	cmd.AddCommand(patternsListCmd())
	cmd.AddCommand(patternsShowCmd())
	cmd.AddCommand(patternsCreateCmd())
	cmd.AddCommand(patternsDeleteCmd())
	cmd.AddCommand(patternsImportCmd())
	cmd.AddCommand(patternsSeedCmd())

	return cmd
}

func patternsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pattern rules with explanations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			category, _ := cmd.Flags().GetString("category")
			all, _ := cmd.Flags().GetBool("all")

			rules, err := db.GetPatternRules(ctx, !all)
			if err != nil {
				return fmt.Errorf("failed to get pattern rules: %w", err)
			}

			if category != "" {
				filtered := rules[:0]
				for _, rule := range rules {
					if strings.EqualFold(rule.Category, category) {
						filtered = append(filtered, rule)
					}
				}
				rules = filtered
			}

			out := cmd.OutOrStdout()
			if len(rules) == 0 {
				_, err := fmt.Fprintln(out, cli.FormatInfo("No pattern rules found"))
				return err
			}

			return writePatternTable(out, rules, pattern.NewExplainer())
		},
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category")
	cmd.Flags().BoolP("all", "a", false, "Include inactive patterns")
	return cmd
}

func patternsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a pattern rule and how its pattern is read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid pattern ID: %s", args[0])
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rule, err := db.GetPatternRule(ctx, id)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("Pattern rule %d not found", id), err)
				}
				return err
			}

			exp := pattern.Describe(rule.Pattern)

			var b strings.Builder
			fmt.Fprintf(&b, "ID:          %d\n", rule.ID)
			fmt.Fprintf(&b, "Category:    %s\n", rule.CategoryPath())
			fmt.Fprintf(&b, "Priority:    %d\n", rule.Priority)
			fmt.Fprintf(&b, "Active:      %t\n", rule.IsActive)
			fmt.Fprintf(&b, "Pattern:     %s\n", rule.Pattern)
			fmt.Fprintf(&b, "Explanation: %s\n", exp.Text)
			b.WriteString(cli.RenderPatternDetails(exp))
			fmt.Fprintf(&b, "Created:     %s", rule.CreatedAt.Format("2006-01-02 15:04:05"))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(rule.Name, b.String()))
			return err
		},
	}
}

func patternsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pattern rule",
		Example: `  spice patterns create --name Streaming --pattern 'contains("NETFLIX")' --category Subscriptions
  spice patterns create --name Amazon --pattern '^AMZN.*' --category Shopping --priority 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			name, _ := cmd.Flags().GetString("name")
			expr, _ := cmd.Flags().GetString("pattern")
			category, _ := cmd.Flags().GetString("category")
			subcategory, _ := cmd.Flags().GetString("subcategory")
			priority, _ := cmd.Flags().GetInt("priority")
			inactive, _ := cmd.Flags().GetBool("inactive")

			if name == "" || expr == "" || category == "" {
				return fmt.Errorf("name, pattern and category are required")
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rule := &model.PatternRule{
				Name:        name,
				Pattern:     expr,
				Category:    category,
				Subcategory: subcategory,
				Priority:    priority,
				IsActive:    !inactive,
			}
			if err := db.CreatePatternRule(ctx, rule); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					return common.NewUserError(fmt.Sprintf("A pattern rule named %q already exists", name), err)
				}
				return fmt.Errorf("failed to create pattern rule: %w", err)
			}

			common.LogInfo("Created pattern rule", common.Fields{"id": rule.ID, "name": rule.Name})

			out := cmd.OutOrStdout()
			_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Created pattern rule %d", rule.ID)))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cli.RenderExplanation(rule.Pattern, pattern.ExplainPattern(rule.Pattern)))
			return err
		},
	}

	cmd.Flags().String("name", "", "Rule name (required)")
	cmd.Flags().String("pattern", "", "Predicate or regular expression (required)")
	cmd.Flags().String("category", "", "Category to assign (required)")
	cmd.Flags().String("subcategory", "", "Subcategory to assign")
	cmd.Flags().Int("priority", 0, "Priority; higher rules are listed first")
	cmd.Flags().Bool("inactive", false, "Create the rule disabled")

	return cmd
}

func patternsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pattern rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid pattern ID: %s", args[0])
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.DeletePatternRule(ctx, id); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("Pattern rule %d not found", id), err)
				}
				return fmt.Errorf("failed to delete pattern rule: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted pattern rule %d", id)))
			return err
		},
	}
}

func patternsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <rules.yaml>",
		Short: "Import pattern rules and views from a rules file",
		Long: `Import every pattern and view in a rules file into the catalogue.
Entries whose name already exists are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rules, err := config.LoadRules(args[0])
			if err != nil {
				return err
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			patterns := rules.PatternRules()
			views := rules.ModelViews()
			out := cmd.OutOrStdout()
			bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(patterns)+len(views), "Importing rules...")

			var imported, skipped int
			for i := range patterns {
				if err := ctx.Err(); err != nil {
					return err
				}
				err := db.CreatePatternRule(ctx, &patterns[i])
				switch {
				case errors.Is(err, common.ErrDuplicateEntry):
					skipped++
					common.LogDebug("Skipping existing pattern rule", common.Fields{"name": patterns[i].Name})
				case err != nil:
					return fmt.Errorf("failed to import pattern %q: %w", patterns[i].Name, err)
				default:
					imported++
				}
				_ = bar.Add(1)
			}

			for i := range views {
				if err := ctx.Err(); err != nil {
					return err
				}
				err := db.CreateView(ctx, &views[i])
				switch {
				case errors.Is(err, common.ErrDuplicateEntry):
					skipped++
					common.LogDebug("Skipping existing view", common.Fields{"name": views[i].Name})
				case err != nil:
					return fmt.Errorf("failed to import view %q: %w", views[i].Name, err)
				default:
					imported++
				}
				_ = bar.Add(1)
			}

			if _, err := fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d entries", imported))); err != nil {
				return err
			}
			if skipped > 0 {
				_, err := fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Skipped %d entries that already exist", skipped)))
				return err
			}
			return nil
		},
	}
}

func patternsSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the starter set of pattern rules",
		Long: `Add a starter set of pattern rules for common income, transfer and fee
transactions. Rules whose name already exists are left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var created []model.PatternRule
			for _, rule := range pattern.DefaultRules() {
				err := db.CreatePatternRule(ctx, &rule)
				if errors.Is(err, common.ErrDuplicateEntry) {
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to seed pattern %q: %w", rule.Name, err)
				}
				created = append(created, rule)
			}

			out := cmd.OutOrStdout()
			if len(created) == 0 {
				_, err := fmt.Fprintln(out, cli.FormatInfo("Starter patterns are already present"))
				return err
			}

			if _, err := fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %d starter patterns", len(created)))); err != nil {
				return err
			}
			return writePatternTable(out, created, pattern.NewExplainer())
		},
	}
}
