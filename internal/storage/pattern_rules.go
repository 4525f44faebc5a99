package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/model"
)

const patternRuleColumns = `id, name, pattern, category, subcategory, priority, is_active, created_at, updated_at`

// CreatePatternRule creates a new pattern rule.
func (s *SQLiteStorage) CreatePatternRule(ctx context.Context, rule *model.PatternRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if err := validatePatternRule(rule); err != nil {
		return err
	}

	query := `
		INSERT INTO pattern_rules (name, pattern, category, subcategory, priority, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		rule.Name, rule.Pattern, rule.Category, rule.Subcategory, rule.Priority, rule.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("pattern rule %q: %w", rule.Name, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create pattern rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get pattern rule ID: %w", err)
	}

	now := time.Now()
	rule.ID = int(id)
	rule.CreatedAt = now
	rule.UpdatedAt = now

	return nil
}

// GetPatternRule retrieves a pattern rule by ID.
func (s *SQLiteStorage) GetPatternRule(ctx context.Context, id int) (*model.PatternRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+patternRuleColumns+` FROM pattern_rules WHERE id = ?`, id)

	rule, err := scanPatternRule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pattern rule %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pattern rule: %w", err)
	}

	return rule, nil
}

// GetPatternRuleByName retrieves a pattern rule by its unique name.
func (s *SQLiteStorage) GetPatternRuleByName(ctx context.Context, name string) (*model.PatternRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+patternRuleColumns+` FROM pattern_rules WHERE name = ?`, name)

	rule, err := scanPatternRule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pattern rule %q: %w", name, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pattern rule: %w", err)
	}

	return rule, nil
}

// GetPatternRules retrieves pattern rules ordered by priority, highest first.
func (s *SQLiteStorage) GetPatternRules(ctx context.Context, activeOnly bool) ([]model.PatternRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + patternRuleColumns + ` FROM pattern_rules`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY priority DESC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get pattern rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.PatternRule
	for rows.Next() {
		rule, err := scanPatternRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pattern rule: %w", err)
		}
		rules = append(rules, *rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pattern rules: %w", err)
	}

	return rules, nil
}

// DeletePatternRule removes a pattern rule.
func (s *SQLiteStorage) DeletePatternRule(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM pattern_rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pattern rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("pattern rule %d: %w", id, common.ErrNotFound)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatternRule(row rowScanner) (*model.PatternRule, error) {
	var rule model.PatternRule
	err := row.Scan(
		&rule.ID, &rule.Name, &rule.Pattern, &rule.Category, &rule.Subcategory,
		&rule.Priority, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
