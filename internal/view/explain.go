// Package view explains the boolean filter expressions that select grouped views of spending.
package view

import (
	"regexp"
	"strings"

	"github.com/Veraticus/spice-explain/internal/service"
)

// Ensure Explainer implements the service.Explainer interface.
var _ service.Explainer = (*Explainer)(nil)

// ClauseKind identifies the predicate a clause was translated from.
type ClauseKind string

// Clause kinds, in the order they are checked.
const (
	ClauseCategory    ClauseKind = "category"
	ClauseSubcategory ClauseKind = "subcategory"
	ClauseTag         ClauseKind = "tag"
	ClauseMonths      ClauseKind = "months"
	ClauseTotal       ClauseKind = "total"
	ClauseCV          ClauseKind = "cv"
)

// Clause is one recognized predicate translated to English.
type Clause struct {
	Kind  ClauseKind
	Value string
	Text  string
}

// Explanation is the structured result of explaining a view filter.
type Explanation struct {
	Text    string
	Clauses []Clause
	// Fallback is set when no predicate was recognized and Text is the cleaned-up expression.
	Fallback bool
}

// predicate describes how one clause kind is detected, extracted and rendered.
type predicate struct {
	extract  *regexp.Regexp
	render   func(value string) string
	kind     ClauseKind
	triggers []string
	// all extracts every occurrence instead of the first one.
	all bool
}

// predicates are checked in this order regardless of where they appear in the expression.
var predicates = []predicate{
	{
		kind:     ClauseCategory,
		triggers: []string{"category ==", "category='"},
		extract:  regexp.MustCompile(`(?i)category\s*==?\s*["']([^"']+)["']`),
		render:   func(v string) string { return `Category is "` + v + `"` },
	},
	{
		kind:     ClauseSubcategory,
		triggers: []string{"subcategory ==", "subcategory='"},
		extract:  regexp.MustCompile(`(?i)subcategory\s*==?\s*["']([^"']+)["']`),
		render:   func(v string) string { return `Subcategory is "` + v + `"` },
	},
	{
		kind:     ClauseTag,
		triggers: []string{"tag(", "has_tag("},
		extract:  regexp.MustCompile(`(?i)(?:tag|has_tag)\(["']([^"']+)["']\)`),
		render:   func(v string) string { return `Has tag "` + v + `"` },
		all:      true,
	},
	{
		kind:     ClauseMonths,
		triggers: []string{"months >", "months>="},
		extract:  regexp.MustCompile(`months\s*>=?\s*(\d+)`),
		render:   func(v string) string { return "Active " + v + "+ months" },
	},
	{
		kind:     ClauseTotal,
		triggers: []string{"total >", "total>="},
		extract:  regexp.MustCompile(`total\s*>=?\s*(\d+)`),
		render:   func(v string) string { return "Total ≥ $" + v },
	},
	{
		kind:     ClauseCV,
		triggers: []string{"cv <", "cv<="},
		extract:  regexp.MustCompile(`cv\s*<=?\s*([\d.]+)`),
		render:   func(v string) string { return "Coefficient of variation ≤ " + v },
	},
}

// fallbackReplacer cleans up an expression nothing was recognized in.
var fallbackReplacer = strings.NewReplacer("==", "=", "&&", " and ", "||", " or ")

// Explainer implements service.Explainer for view filters.
type Explainer struct{}

// NewExplainer creates a new view filter explainer.
func NewExplainer() *Explainer {
	return &Explainer{}
}

// Explain returns the human-readable explanation of a view filter.
func (Explainer) Explain(expr string) string {
	return ExplainViewFilter(expr)
}

// ExplainViewFilter converts a view filter expression to a human-readable sentence.
// Recognized predicates are joined with "AND"; otherwise the expression is returned with
// its operators spelled out.
func ExplainViewFilter(expr string) string {
	return Describe(expr).Text
}

// Describe explains a view filter and returns the clauses it recognized.
func Describe(expr string) Explanation {
	if expr == "" {
		return Explanation{}
	}

	lowered := strings.ToLower(expr)

	var clauses []Clause
	for _, p := range predicates {
		if !p.triggered(lowered) {
			continue
		}
		for _, value := range p.values(expr) {
			clauses = append(clauses, Clause{Kind: p.kind, Value: value, Text: p.render(value)})
		}
	}

	if len(clauses) == 0 {
		return Explanation{
			Text:     fallbackReplacer.Replace(expr),
			Fallback: true,
		}
	}

	texts := make([]string, len(clauses))
	for i, c := range clauses {
		texts[i] = c.Text
	}

	return Explanation{
		Text:    strings.Join(texts, " AND "),
		Clauses: clauses,
	}
}

func (p predicate) triggered(lowered string) bool {
	for _, t := range p.triggers {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}

func (p predicate) values(expr string) []string {
	if !p.all {
		if m := p.extract.FindStringSubmatch(expr); m != nil {
			return []string{m[1]}
		}
		return nil
	}

	matches := p.extract.FindAllStringSubmatch(expr, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m[1])
	}
	return values
}
