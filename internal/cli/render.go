package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/spice-explain/internal/pattern"
	"github.com/Veraticus/spice-explain/internal/view"
)

// RenderPatternDetails describes how a pattern was recognized, one fact per line.
func RenderPatternDetails(exp pattern.Explanation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render("Kind:"), exp.Kind)
	if len(exp.Terms) > 0 {
		fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render("Terms:"), strings.Join(exp.Terms, ", "))
	}
	if exp.Omitted > 0 {
		fmt.Fprintf(&b, "%s %d\n", SubtleStyle.Render("Not shown:"), exp.Omitted)
	}

	return b.String()
}

// RenderFilterDetails lists the clauses recognized in a view filter.
func RenderFilterDetails(exp view.Explanation) string {
	var b strings.Builder

	if exp.Fallback {
		fmt.Fprintf(&b, "%s\n", SubtleStyle.Render("No recognized predicates; operators spelled out."))
		return b.String()
	}

	for _, c := range exp.Clauses {
		fmt.Fprintf(&b, "  • %s %s %s\n", c.Kind, ArrowIcon, c.Value)
	}

	return b.String()
}

// RenderExplanation pairs a raw expression with its explanation.
func RenderExplanation(expr, explanation string) string {
	return ExpressionStyle.Render(expr) + "\n  " + ArrowIcon + " " + explanation
}
