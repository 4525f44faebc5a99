// Package storage provides the data persistence layer for the spice application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/spice-explain/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidPatternRule = errors.New("invalid pattern rule")
	ErrInvalidView        = errors.New("invalid view")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validatePatternRule validates a pattern rule before it is stored.
// The pattern itself is stored as written; it may be a predicate expression rather than a regex.
func validatePatternRule(rule *model.PatternRule) error {
	if rule == nil {
		return fmt.Errorf("%w: pattern rule", ErrNilParameter)
	}
	if strings.TrimSpace(rule.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPatternRule)
	}
	if rule.Pattern == "" {
		return fmt.Errorf("%w: missing pattern", ErrInvalidPatternRule)
	}
	if strings.TrimSpace(rule.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidPatternRule)
	}
	return nil
}

// validateView validates a view before it is stored.
func validateView(view *model.View) error {
	if view == nil {
		return fmt.Errorf("%w: view", ErrNilParameter)
	}
	if strings.TrimSpace(view.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidView)
	}
	if view.Filter == "" {
		return fmt.Errorf("%w: missing filter", ErrInvalidView)
	}
	return nil
}
