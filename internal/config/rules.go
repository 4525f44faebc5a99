package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/model"
	"gopkg.in/yaml.v3"
)

// RuleEntry is one pattern rule as written in a rules file.
type RuleEntry struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Category    string `yaml:"category"`
	Subcategory string `yaml:"subcategory,omitempty"`
	Priority    int    `yaml:"priority,omitempty"`
	Inactive    bool   `yaml:"inactive,omitempty"`
}

// ViewEntry is one view as written in a rules file.
type ViewEntry struct {
	Name        string `yaml:"name"`
	Filter      string `yaml:"filter"`
	Description string `yaml:"description,omitempty"`
}

// RulesFile is the YAML document holding pattern rules and views.
type RulesFile struct {
	Patterns []RuleEntry `yaml:"patterns"`
	Views    []ViewEntry `yaml:"views"`
}

// LoadRules reads and validates a rules file. The path may use ~ and environment variables.
func LoadRules(path string) (*RulesFile, error) {
	path = ExpandPath(path)

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return rules, nil
}

// ParseRules decodes and validates a rules document.
func ParseRules(data []byte) (*RulesFile, error) {
	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &rules, nil
}

// Validate checks that every entry has the fields needed to store it.
func (f *RulesFile) Validate() error {
	for i, p := range f.Patterns {
		switch {
		case strings.TrimSpace(p.Name) == "":
			return fmt.Errorf("%w: pattern %d has no name", common.ErrInvalidConfig, i)
		case p.Pattern == "":
			return fmt.Errorf("%w: pattern %q has no pattern", common.ErrInvalidConfig, p.Name)
		case strings.TrimSpace(p.Category) == "":
			return fmt.Errorf("%w: pattern %q has no category", common.ErrInvalidConfig, p.Name)
		}
	}

	for i, v := range f.Views {
		switch {
		case strings.TrimSpace(v.Name) == "":
			return fmt.Errorf("%w: view %d has no name", common.ErrInvalidConfig, i)
		case v.Filter == "":
			return fmt.Errorf("%w: view %q has no filter", common.ErrInvalidConfig, v.Name)
		}
	}

	return nil
}

// PatternRules converts the file's pattern entries to model rules.
func (f *RulesFile) PatternRules() []model.PatternRule {
	rules := make([]model.PatternRule, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		rules = append(rules, model.PatternRule{
			Name:        p.Name,
			Pattern:     p.Pattern,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Priority:    p.Priority,
			IsActive:    !p.Inactive,
		})
	}
	return rules
}

// ModelViews converts the file's view entries to model views.
func (f *RulesFile) ModelViews() []model.View {
	views := make([]model.View, 0, len(f.Views))
	for _, v := range f.Views {
		views = append(views, model.View{
			Name:        v.Name,
			Filter:      v.Filter,
			Description: v.Description,
		})
	}
	return views
}
