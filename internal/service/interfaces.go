// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/spice-explain/internal/model"
)

// Explainer turns a stored expression into a human-readable sentence.
type Explainer interface {
	// Explain never fails; unrecognized input yields a best-effort rendering.
	Explain(expr string) string
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Pattern rule operations
	CreatePatternRule(ctx context.Context, rule *model.PatternRule) error
	GetPatternRule(ctx context.Context, id int) (*model.PatternRule, error)
	GetPatternRuleByName(ctx context.Context, name string) (*model.PatternRule, error)
	GetPatternRules(ctx context.Context, activeOnly bool) ([]model.PatternRule, error)
	DeletePatternRule(ctx context.Context, id int) error

	// View operations
	CreateView(ctx context.Context, view *model.View) error
	GetViewByName(ctx context.Context, name string) (*model.View, error)
	GetViews(ctx context.Context) ([]model.View, error)
	DeleteView(ctx context.Context, name string) error

	// Maintenance
	Migrate(ctx context.Context) error
	Close() error
}
