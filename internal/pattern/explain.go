package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// maxShownTerms is how many terms or alternatives are spelled out before truncating.
const maxShownTerms = 3

var (
	containsRe   = regexp.MustCompile(`(?i)contains\(["']([^"']+)["']\)`)
	startsWithRe = regexp.MustCompile(`(?i)startswith\(["']([^"']+)["']\)`)
	anyOfRe      = regexp.MustCompile(`(?i)anyof\(([^)]+)\)`)
)

// displayReplacements rewrite common regex syntax for display. Pairs are applied in order.
var displayReplacements = []struct {
	from string
	to   string
}{
	{`.*`, " ... "},
	{`.+`, " ... "},
	{`\s+`, " "},
	{`\s`, " "},
	{`\d+`, "#"},
	{`\d`, "#"},
	{`(?!`, " (not followed by "},
	{`(?:`, "("},
}

// Explainer implements service.Explainer for pattern rules.
type Explainer struct{}

// NewExplainer creates a new pattern explainer.
func NewExplainer() *Explainer {
	return &Explainer{}
}

// Explain returns the human-readable explanation of a pattern.
func (Explainer) Explain(pattern string) string {
	return ExplainPattern(pattern)
}

// ExplainPattern converts a rule pattern (DSL predicate or raw regex) to a human-readable sentence.
// It never fails; unrecognized input degrades to a generic regex description.
func ExplainPattern(pattern string) string {
	return Describe(pattern).Text
}

// Describe explains a pattern and reports how it was recognized.
func Describe(pattern string) Explanation {
	if pattern == "" {
		return Explanation{Kind: KindEmpty}
	}

	lowered := strings.ToLower(pattern)

	// Expression-style predicates
	if strings.Contains(lowered, "contains(") {
		if m := containsRe.FindStringSubmatch(pattern); m != nil {
			return Explanation{
				Kind:  KindContains,
				Text:  `Description contains "` + m[1] + `"`,
				Terms: []string{m[1]},
			}
		}
	}

	if strings.Contains(lowered, "startswith(") {
		if m := startsWithRe.FindStringSubmatch(pattern); m != nil {
			return Explanation{
				Kind:  KindStartsWith,
				Text:  `Description starts with "` + m[1] + `"`,
				Terms: []string{m[1]},
			}
		}
	}

	if strings.Contains(lowered, "anyof(") {
		if m := anyOfRe.FindStringSubmatch(pattern); m != nil {
			return describeAnyOf(m[1])
		}
	}

	// Raw regex alternation
	if strings.Contains(pattern, "|") && !strings.HasPrefix(pattern, "(") {
		return describeAlternation(pattern)
	}

	return describeRegex(pattern)
}

func describeAnyOf(args string) Explanation {
	parts := strings.Split(args, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		terms = append(terms, strings.Trim(strings.TrimSpace(part), `"'`))
	}

	if len(terms) <= maxShownTerms {
		return Explanation{
			Kind:  KindAnyOf,
			Text:  "Description contains any of: " + strings.Join(terms, ", "),
			Terms: terms,
		}
	}

	return Explanation{
		Kind:    KindAnyOf,
		Text:    "Description contains any of: " + strings.Join(terms[:maxShownTerms], ", ") + "...",
		Terms:   terms,
		Omitted: len(terms) - maxShownTerms,
	}
}

func describeAlternation(pattern string) Explanation {
	alternatives := strings.Split(pattern, "|")
	terms := make([]string, 0, len(alternatives))
	for _, alt := range alternatives {
		alt = strings.ReplaceAll(alt, ".*", " ... ")
		alt = strings.ReplaceAll(alt, `\s`, " ")
		terms = append(terms, strings.TrimSpace(alt))
	}

	if len(terms) <= maxShownTerms {
		return Explanation{
			Kind:  KindAlternation,
			Text:  "Matches: " + strings.Join(terms, " OR "),
			Terms: terms,
		}
	}

	omitted := len(terms) - maxShownTerms
	return Explanation{
		Kind:    KindAlternation,
		Text:    fmt.Sprintf("Matches: %s (+ %d more)", strings.Join(terms[:maxShownTerms], " OR "), omitted),
		Terms:   terms,
		Omitted: omitted,
	}
}

func describeRegex(pattern string) Explanation {
	prefix := "Contains"
	if strings.HasPrefix(pattern, "^") {
		pattern = pattern[1:]
		prefix = "Starts with"
	}

	endAnchor := strings.HasSuffix(pattern, "$")
	if endAnchor {
		pattern = pattern[:len(pattern)-1]
	}

	display := pattern
	for _, r := range displayReplacements {
		display = strings.ReplaceAll(display, r.from, r.to)
	}
	display = strings.TrimSpace(display)

	text := prefix + ` "` + display + `"`
	if endAnchor {
		text += " at end"
	}

	return Explanation{
		Kind:  KindRegex,
		Text:  text,
		Terms: []string{display},
	}
}
