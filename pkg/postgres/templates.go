package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nextshift/shiftboard/pkg/db"
)

// Templates are listed in creation order so the board renders them the way
// they were entered.
const templateColumns = `id, name, start_time, end_time, bg_color, text_color, is_active`

func scanTemplates(rows pgx.Rows) ([]db.ShiftTemplate, error) {
	defer rows.Close()

	var templates []db.ShiftTemplate
	for rows.Next() {
		var t db.ShiftTemplate
		var start, end *string
		if err := rows.Scan(&t.ID, &t.Name, &start, &end, &t.BgColor, &t.TextColor, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan shift template: %w", err)
		}
		if start != nil {
			t.StartTime = *start
		}
		if end != nil {
			t.EndTime = *end
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift templates: %w", err)
	}

	return templates, nil
}

// GetTemplates retrieves every shift template, active or not
func (d *DB) GetTemplates(ctx context.Context) ([]db.ShiftTemplate, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM shifts
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift templates: %w", err)
	}
	return scanTemplates(rows)
}

// GetActiveTemplates retrieves only templates with the active flag set
func (d *DB) GetActiveTemplates(ctx context.Context) ([]db.ShiftTemplate, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM shifts
		WHERE is_active
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active shift templates: %w", err)
	}
	return scanTemplates(rows)
}

// GetTemplate retrieves a single shift template by id
func (d *DB) GetTemplate(ctx context.Context, id string) (*db.ShiftTemplate, error) {
	var t db.ShiftTemplate
	var start, end *string
	err := d.pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM shifts
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &start, &end, &t.BgColor, &t.TextColor, &t.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift template %s: %w", id, notFound(err))
	}
	if start != nil {
		t.StartTime = *start
	}
	if end != nil {
		t.EndTime = *end
	}
	return &t, nil
}

// InsertTemplate inserts a new shift template
func (d *DB) InsertTemplate(ctx context.Context, template *db.ShiftTemplate) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shifts (id, name, start_time, end_time, bg_color, text_color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, template.ID, template.Name, nullable(template.StartTime), nullable(template.EndTime),
		template.BgColor, template.TextColor, template.IsActive)
	if err != nil {
		return fmt.Errorf("failed to insert shift template: %w", err)
	}
	return nil
}

// UpdateTemplate replaces every field of the named template. Assignments
// that snapshotted its times keep their copies.
func (d *DB) UpdateTemplate(ctx context.Context, template *db.ShiftTemplate) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shifts
		SET name = $2, start_time = $3, end_time = $4, bg_color = $5, text_color = $6
		WHERE id = $1
	`, template.ID, template.Name, nullable(template.StartTime), nullable(template.EndTime),
		template.BgColor, template.TextColor)
	if err != nil {
		return fmt.Errorf("failed to update shift template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update shift template %s: %w", template.ID, db.ErrNotFound)
	}
	return nil
}

// ToggleTemplateActive flips the template's active flag
func (d *DB) ToggleTemplateActive(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shifts SET is_active = NOT is_active WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to toggle shift template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to toggle shift template %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// nullable maps the empty string onto SQL NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
