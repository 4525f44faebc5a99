package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternRules_CRUD(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	rule := &model.PatternRule{
		Name:        "Streaming",
		Pattern:     `contains("NETFLIX")`,
		Category:    "Subscriptions",
		Subcategory: "Video",
		Priority:    5,
		IsActive:    true,
	}
	require.NoError(t, store.CreatePatternRule(ctx, rule))
	assert.NotZero(t, rule.ID)
	assert.False(t, rule.CreatedAt.IsZero())

	got, err := store.GetPatternRule(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, rule.Name, got.Name)
	assert.Equal(t, rule.Pattern, got.Pattern)
	assert.Equal(t, "Subscriptions", got.Category)
	assert.Equal(t, "Video", got.Subcategory)
	assert.Equal(t, 5, got.Priority)
	assert.True(t, got.IsActive)

	byName, err := store.GetPatternRuleByName(ctx, "Streaming")
	require.NoError(t, err)
	assert.Equal(t, rule.ID, byName.ID)

	require.NoError(t, store.DeletePatternRule(ctx, rule.ID))

	_, err = store.GetPatternRule(ctx, rule.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = store.DeletePatternRule(ctx, rule.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPatternRules_StoresInvalidRegexVerbatim(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// Predicate syntax and lookaheads are not valid Go regexps; they are stored as written.
	rule := &model.PatternRule{Name: "Amazon", Pattern: `AMAZON(?!PRIME)`, Category: "Shopping", IsActive: true}
	require.NoError(t, store.CreatePatternRule(ctx, rule))

	got, err := store.GetPatternRule(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, `AMAZON(?!PRIME)`, got.Pattern)
}

func TestPatternRules_Duplicate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreatePatternRule(ctx, &model.PatternRule{Name: "Gas", Pattern: "SHELL", Category: "Auto"}))

	err := store.CreatePatternRule(ctx, &model.PatternRule{Name: "Gas", Pattern: "CHEVRON", Category: "Auto"})
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestGetPatternRules_Ordering(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	rules := []model.PatternRule{
		{Name: "low", Pattern: "A", Category: "X", Priority: 1, IsActive: true},
		{Name: "high", Pattern: "B", Category: "X", Priority: 10, IsActive: true},
		{Name: "off", Pattern: "C", Category: "X", Priority: 20, IsActive: false},
		{Name: "low-too", Pattern: "D", Category: "X", Priority: 1, IsActive: true},
	}
	for i := range rules {
		require.NoError(t, store.CreatePatternRule(ctx, &rules[i]))
	}

	active, err := store.GetPatternRules(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "low", "low-too"}, ruleNames(active))

	all, err := store.GetPatternRules(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"off", "high", "low", "low-too"}, ruleNames(all))
}

func TestCreatePatternRule_Validation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	tests := []struct {
		rule    *model.PatternRule
		wantErr error
		name    string
	}{
		{name: "nil rule", rule: nil, wantErr: ErrNilParameter},
		{name: "missing name", rule: &model.PatternRule{Pattern: "A", Category: "X"}, wantErr: ErrInvalidPatternRule},
		{name: "missing pattern", rule: &model.PatternRule{Name: "a", Category: "X"}, wantErr: ErrInvalidPatternRule},
		{name: "missing category", rule: &model.PatternRule{Name: "a", Pattern: "A"}, wantErr: ErrInvalidPatternRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.CreatePatternRule(ctx, tt.rule)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func ruleNames(rules []model.PatternRule) []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return names
}
