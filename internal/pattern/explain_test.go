package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainPattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{
			name:     "empty pattern",
			pattern:  "",
			expected: "",
		},
		{
			name:     "contains with double quotes",
			pattern:  `contains("NETFLIX")`,
			expected: `Description contains "NETFLIX"`,
		},
		{
			name:     "contains with single quotes",
			pattern:  `contains('Spotify')`,
			expected: `Description contains "Spotify"`,
		},
		{
			name:     "contains keyword is case insensitive but value keeps case",
			pattern:  `CONTAINS("Whole Foods")`,
			expected: `Description contains "Whole Foods"`,
		},
		{
			name:     "startswith",
			pattern:  `startswith("AMZN")`,
			expected: `Description starts with "AMZN"`,
		},
		{
			name:     "anyof with three terms",
			pattern:  `anyof("UBER", "LYFT", "TAXI")`,
			expected: "Description contains any of: UBER, LYFT, TAXI",
		},
		{
			name:     "anyof with bare terms",
			pattern:  `anyof(shell, chevron)`,
			expected: "Description contains any of: shell, chevron",
		},
		{
			name:     "anyof truncates after three terms",
			pattern:  `anyof("A", "B", "C", "D")`,
			expected: "Description contains any of: A, B, C...",
		},
		{
			name:     "alternation with two alternatives",
			pattern:  `NETFLIX|HULU`,
			expected: "Matches: NETFLIX OR HULU",
		},
		{
			name:     "alternation rewrites wildcards and whitespace",
			pattern:  `AMAZON.*PRIME|WHOLE\sFOODS`,
			expected: "Matches: AMAZON ... PRIME OR WHOLE FOODS",
		},
		{
			name:     "alternation counts hidden alternatives",
			pattern:  `A|B|C|D|E`,
			expected: "Matches: A OR B OR C (+ 2 more)",
		},
		{
			name:     "grouped alternation uses the regex fallback",
			pattern:  `(A|B)`,
			expected: `Contains "(A|B)"`,
		},
		{
			name:     "both anchors",
			pattern:  `^AMZN.*$`,
			expected: `Starts with "AMZN ..." at end`,
		},
		{
			name:     "start anchor only",
			pattern:  `^SQ\s\*`,
			expected: `Starts with "SQ \*"`,
		},
		{
			name:     "end anchor only",
			pattern:  `PAYROLL$`,
			expected: `Contains "PAYROLL" at end`,
		},
		{
			name:     "digits and one-or-more",
			pattern:  `CHECK\s+\d+.+`,
			expected: `Contains "CHECK # ..."`,
		},
		{
			name:     "single digit",
			pattern:  `STORE\d`,
			expected: `Contains "STORE#"`,
		},
		{
			name:     "negative lookahead",
			pattern:  `AMAZON(?!PRIME)`,
			expected: `Contains "AMAZON (not followed by PRIME)"`,
		},
		{
			name:     "non-capturing group",
			pattern:  `(?:COSTCO)`,
			expected: `Contains "(COSTCO)"`,
		},
		{
			name:     "malformed contains falls through to regex",
			pattern:  `contains(NETFLIX)`,
			expected: `Contains "contains(NETFLIX)"`,
		},
		{
			name:     "malformed startswith with alternation falls through to alternation",
			pattern:  `startswith(A)|B`,
			expected: "Matches: startswith(A) OR B",
		},
		{
			name:     "backslashes are not escaped",
			pattern:  `contains("A\B")`,
			expected: `Description contains "A\B"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExplainPattern(tt.pattern))
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		wantKind    Kind
		wantTerms   []string
		wantOmitted int
	}{
		{
			name:     "empty",
			pattern:  "",
			wantKind: KindEmpty,
		},
		{
			name:      "contains",
			pattern:   `contains("NETFLIX")`,
			wantKind:  KindContains,
			wantTerms: []string{"NETFLIX"},
		},
		{
			name:      "startswith",
			pattern:   `StartsWith('Venmo')`,
			wantKind:  KindStartsWith,
			wantTerms: []string{"Venmo"},
		},
		{
			name:        "anyof keeps every term",
			pattern:     `anyof("A", 'B', C, "D", "E")`,
			wantKind:    KindAnyOf,
			wantTerms:   []string{"A", "B", "C", "D", "E"},
			wantOmitted: 2,
		},
		{
			name:        "alternation keeps every alternative",
			pattern:     `a|b|c|d`,
			wantKind:    KindAlternation,
			wantTerms:   []string{"a", "b", "c", "d"},
			wantOmitted: 1,
		},
		{
			name:      "regex body",
			pattern:   `^TARGET\s+#\d+$`,
			wantKind:  KindRegex,
			wantTerms: []string{"TARGET ##"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.pattern)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantTerms, got.Terms)
			assert.Equal(t, tt.wantOmitted, got.Omitted)
			assert.Equal(t, ExplainPattern(tt.pattern), got.Text)
		})
	}
}

func TestExplainer_Explain(t *testing.T) {
	e := NewExplainer()
	assert.Equal(t, `Description contains "NETFLIX"`, e.Explain(`contains("NETFLIX")`))
	assert.Empty(t, e.Explain(""))
}
