package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Veraticus/spice-explain/internal/cli"
	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/config"
	"github.com/Veraticus/spice-explain/internal/model"
	"github.com/Veraticus/spice-explain/internal/pattern"
	"github.com/Veraticus/spice-explain/internal/service"
	"github.com/Veraticus/spice-explain/internal/view"
	"github.com/spf13/cobra"
)

func explainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain patterns and view filters in plain English",
		Long: `Translate a categorization pattern or a view filter into a short description.

Patterns may be predicates such as contains("NETFLIX"), startswith("AMZN") and
anyof("UBER", "LYFT"), or raw regular expressions. View filters combine
category, subcategory, tag(), months, total and cv comparisons.`,
	}

	cmd.AddCommand(explainPatternCmd())
	cmd.AddCommand(explainFilterCmd())
	cmd.AddCommand(explainFileCmd())

	return cmd
}

func explainPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pattern <pattern>",
		Aliases: []string{"p"},
		Short:   "Explain a categorization pattern",
		Example: `  spice explain pattern 'contains("NETFLIX")'
  spice explain pattern '^AMZN.*$'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			exp := pattern.Describe(args[0])

			common.LogDebug("Explained pattern", common.Fields{"pattern": args[0], "kind": string(exp.Kind)})

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, exp.Text); err != nil {
				return err
			}
			if verbose {
				_, err := fmt.Fprint(out, cli.RenderPatternDetails(exp))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show how the pattern was recognized")
	return cmd
}

func explainFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "filter <expression>",
		Aliases: []string{"f", "view"},
		Short:   "Explain a view filter expression",
		Example: `  spice explain filter 'tag("business") && months >= 6 && total >= 1200'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			exp := view.Describe(args[0])

			common.LogDebug("Explained view filter", common.Fields{
				"filter":   args[0],
				"clauses":  len(exp.Clauses),
				"fallback": exp.Fallback,
			})

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, exp.Text); err != nil {
				return err
			}
			if verbose {
				_, err := fmt.Fprint(out, cli.RenderFilterDetails(exp))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "List the recognized clauses")
	return cmd
}

func explainFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <rules.yaml>",
		Short: "Explain every pattern and view in a rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.LoadRules(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(rules.Patterns) > 0 {
				if _, err := fmt.Fprintln(out, cli.FormatTitle("Patterns")); err != nil {
					return err
				}
				if err := writePatternTable(out, rules.PatternRules(), pattern.NewExplainer()); err != nil {
					return err
				}
			}

			if len(rules.Views) > 0 {
				if _, err := fmt.Fprintln(out, cli.FormatTitle("Views")); err != nil {
					return err
				}
				if err := writeViewTable(out, rules.ModelViews(), view.NewExplainer()); err != nil {
					return err
				}
			}

			if len(rules.Patterns) == 0 && len(rules.Views) == 0 {
				_, err := fmt.Fprintln(out, cli.FormatInfo("No patterns or views in "+args[0]))
				return err
			}

			return nil
		},
	}
}

// writePatternTable prints rules with their explanations.
func writePatternTable(out io.Writer, rules []model.PatternRule, explainer service.Explainer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPATTERN\tEXPLANATION")
	_, _ = fmt.Fprintln(w, "──\t────\t────────\t───────\t───────────")

	for _, rule := range rules {
		id := "-"
		if rule.ID != 0 {
			id = fmt.Sprintf("%d", rule.ID)
		}
		name := rule.Name
		if !rule.IsActive {
			name += " (inactive)"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			id,
			truncateString(name, 30),
			rule.CategoryPath(),
			truncateString(rule.Pattern, 40),
			explainer.Explain(rule.Pattern))
	}

	return w.Flush()
}

// writeViewTable prints views with their explanations.
func writeViewTable(out io.Writer, views []model.View, explainer service.Explainer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tFILTER\tEXPLANATION")
	_, _ = fmt.Fprintln(w, "────\t──────\t───────────")

	for _, v := range views {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			truncateString(v.Name, 30),
			truncateString(v.Filter, 50),
			explainer.Explain(v.Filter))
	}

	return w.Flush()
}
