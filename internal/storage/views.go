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

// CreateView stores a new named view filter.
func (s *SQLiteStorage) CreateView(ctx context.Context, view *model.View) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if err := validateView(view); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO views (name, filter, description) VALUES (?, ?, ?)`,
		view.Name, view.Filter, view.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("view %q: %w", view.Name, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create view: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get view ID: %w", err)
	}

	now := time.Now()
	view.ID = int(id)
	view.CreatedAt = now
	view.UpdatedAt = now

	return nil
}

// GetViewByName retrieves a view by name.
func (s *SQLiteStorage) GetViewByName(ctx context.Context, name string) (*model.View, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var view model.View
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, filter, description, created_at, updated_at FROM views WHERE name = ?`, name,
	).Scan(&view.ID, &view.Name, &view.Filter, &view.Description, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("view %q: %w", name, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get view: %w", err)
	}

	return &view, nil
}

// GetViews retrieves all views ordered by name.
func (s *SQLiteStorage) GetViews(ctx context.Context) ([]model.View, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, filter, description, created_at, updated_at FROM views ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get views: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var views []model.View
	for rows.Next() {
		var view model.View
		if err := rows.Scan(&view.ID, &view.Name, &view.Filter, &view.Description, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan view: %w", err)
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating views: %w", err)
	}

	return views, nil
}

// DeleteView removes a view by name.
func (s *SQLiteStorage) DeleteView(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM views WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete view: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("view %q: %w", name, common.ErrNotFound)
	}

	return nil
}
