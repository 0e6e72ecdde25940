// Package catalog manages the named shift templates that assignments are
// built from.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
)

// timedNames are template names that describe a clocked shift and therefore
// require nominal start/end times. Matched case-insensitively.
var timedNames = []string{"Morning", "Evening", "Night"}

// CreateInput carries the fields for a new shift template. Start and end
// are optional except for timed categories.
type CreateInput struct {
	Name      string
	BgColor   string
	TextColor string
	StartTime string
	EndTime   string
}

func requiresTimes(name string) bool {
	for _, timed := range timedNames {
		if strings.EqualFold(name, timed) {
			return true
		}
	}
	return false
}

func validate(in CreateInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("template name is required: %w", db.ErrValidation)
	}
	if in.BgColor == "" || in.TextColor == "" {
		return fmt.Errorf("template colors are required: %w", db.ErrValidation)
	}
	if requiresTimes(in.Name) && (in.StartTime == "" || in.EndTime == "") {
		return fmt.Errorf("timed shift %q needs start and end times: %w", in.Name, db.ErrValidation)
	}
	return nil
}

// ListAll returns every template in creation order.
func ListAll(ctx context.Context, store db.TemplateStore) ([]db.ShiftTemplate, error) {
	templates, err := store.GetTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift templates: %w", err)
	}
	return templates, nil
}

// ListActive returns only the templates available for new assignments.
func ListActive(ctx context.Context, store db.TemplateStore) ([]db.ShiftTemplate, error) {
	templates, err := store.GetActiveTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active shift templates: %w", err)
	}
	return templates, nil
}

// Create validates and stores a new template. New templates start active.
func Create(ctx context.Context, store db.TemplateStore, logger *zap.Logger, in CreateInput) (*db.ShiftTemplate, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	template := &db.ShiftTemplate{
		ID:        uuid.New().String(),
		Name:      in.Name,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		BgColor:   in.BgColor,
		TextColor: in.TextColor,
		IsActive:  true,
	}

	if err := store.InsertTemplate(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create shift template: %w", err)
	}

	logger.Info("Shift template created",
		zap.String("template_id", template.ID),
		zap.String("name", template.Name))

	return template, nil
}

// Update replaces every editable field of a template. Assignments that
// snapshotted the old times keep them.
func Update(ctx context.Context, store db.TemplateStore, logger *zap.Logger, id string, in CreateInput) error {
	if err := validate(in); err != nil {
		return err
	}

	template := &db.ShiftTemplate{
		ID:        id,
		Name:      in.Name,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		BgColor:   in.BgColor,
		TextColor: in.TextColor,
	}

	if err := store.UpdateTemplate(ctx, template); err != nil {
		return fmt.Errorf("failed to update shift template: %w", err)
	}

	logger.Info("Shift template updated", zap.String("template_id", id))
	return nil
}

// ToggleActive flips a template between active and retired. Unknown ids
// report db.ErrNotFound.
func ToggleActive(ctx context.Context, store db.TemplateStore, logger *zap.Logger, id string) error {
	if err := store.ToggleTemplateActive(ctx, id); err != nil {
		return fmt.Errorf("failed to toggle shift template: %w", err)
	}

	logger.Info("Shift template toggled", zap.String("template_id", id))
	return nil
}
