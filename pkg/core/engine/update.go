package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
	"github.com/nextshift/shiftboard/pkg/timeutil"
)

// UpdateInput identifies an existing assignment and the scheduling fields
// to overwrite on it.
type UpdateInput struct {
	ID            string
	EmployeeID    string
	ShiftID       string
	Date          string
	CustomDetails string
}

// Update re-points an assignment at a (possibly different) employee,
// template, and date. Nominal times are re-snapshotted from the template
// and classification/approval are re-derived from its name. Recorded
// actual times and overtime are left untouched.
func Update(ctx context.Context, store db.Store, logger *zap.Logger, in UpdateInput) error {
	if !validDate(in.Date) {
		return fmt.Errorf("invalid date %q: %w", in.Date, db.ErrValidation)
	}

	current, err := store.GetAssignment(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("failed to load assignment: %w", err)
	}

	template, err := store.GetTemplate(ctx, in.ShiftID)
	if err != nil {
		return fmt.Errorf("failed to resolve shift template: %w", err)
	}

	// Templates created through older admin screens carry "8 AM" style
	// times; snapshots are always stored 24-hour.
	start, _ := timeutil.Normalize24(template.StartTime)
	end, _ := timeutil.Normalize24(template.EndTime)

	shiftType, status := deriveOnUpdate(template.Name)

	updated := &db.Assignment{
		ID:             current.ID,
		EmployeeID:     in.EmployeeID,
		ShiftID:        template.ID,
		Date:           in.Date,
		StartTime:      start,
		EndTime:        end,
		ShiftType:      shiftType,
		CustomDetails:  in.CustomDetails,
		ApprovalStatus: status,
	}

	if err := store.UpdateAssignment(ctx, updated); err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	logger.Info("Assignment updated",
		zap.String("assignment_id", current.ID),
		zap.String("shift_id", template.ID),
		zap.String("date", in.Date),
		zap.String("approval_status", status))

	return nil
}
