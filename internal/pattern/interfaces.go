// Package pattern turns transaction-matching patterns into human-readable explanations.
package pattern

import "github.com/Veraticus/spice-explain/internal/service"

// Ensure Explainer implements the service.Explainer interface.
var _ service.Explainer = (*Explainer)(nil)

// Kind identifies which form of pattern was recognized.
type Kind string

// Pattern kinds, in recognition order.
const (
	KindEmpty       Kind = "empty"
	KindContains    Kind = "contains"
	KindStartsWith  Kind = "startswith"
	KindAnyOf       Kind = "anyof"
	KindAlternation Kind = "alternation"
	KindRegex       Kind = "regex"
)

// Explanation is the structured result of explaining a pattern.
type Explanation struct {
	Kind Kind
	Text string
	// Terms holds every extracted term in order of appearance, including ones left out of Text.
	Terms []string
	// Omitted counts the terms that Text does not spell out.
	Omitted int
}
