// Package model defines the core data structures for the spice application.
package model

import (
	"time"
)

// PatternRule represents a stored rule that files matching transactions under a category.
// Pattern is either a predicate expression such as contains("NETFLIX") or a raw regular expression.
type PatternRule struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Pattern     string    `json:"pattern"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Priority    int       `json:"priority"`
	ID          int       `json:"id"`
	IsActive    bool      `json:"is_active"`
}

// CategoryPath returns "Category > Subcategory", or just the category when there is no subcategory.
func (r PatternRule) CategoryPath() string {
	if r.Subcategory == "" {
		return r.Category
	}
	return r.Category + " > " + r.Subcategory
}
