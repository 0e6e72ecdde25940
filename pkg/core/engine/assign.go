package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
	"github.com/nextshift/shiftboard/pkg/timeutil"
)

// AssignInput carries everything needed to place a shift on the board.
// StartTime/EndTime override the template's nominal times when set.
// ApprovalStatus overrides name-derived status when set; callers that
// pre-compute status from their own inspection of the shift name pass it
// here, everyone else leaves it empty.
type AssignInput struct {
	EmployeeID     string
	ShiftID        string
	Date           string
	StartTime      string
	EndTime        string
	Classification string
	CustomDetails  string
	ApprovalStatus string
}

// Assign creates the assignment for (employee, date), replacing whatever
// held the slot before. The replace is a full delete-then-insert in one
// transaction; no field of the prior record survives.
func Assign(ctx context.Context, store db.Store, logger *zap.Logger, in AssignInput) (*db.Assignment, error) {
	if !validDate(in.Date) {
		return nil, fmt.Errorf("invalid date %q: %w", in.Date, db.ErrValidation)
	}

	employee, err := store.GetEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	template, err := store.GetTemplate(ctx, in.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve shift template: %w", err)
	}

	shiftType, status := deriveInitial(template.Name)
	if in.ApprovalStatus != "" {
		// Caller-supplied policy wins over name derivation.
		status = in.ApprovalStatus
		if in.Classification != "" {
			shiftType = in.Classification
		}
	}

	start, end := in.StartTime, in.EndTime
	if start == "" {
		start, _ = timeutil.Normalize24(template.StartTime)
	}
	if end == "" {
		end, _ = timeutil.Normalize24(template.EndTime)
	}

	assignment := &db.Assignment{
		ID:             uuid.New().String(),
		EmployeeID:     employee.ID,
		ShiftID:        template.ID,
		Date:           in.Date,
		StartTime:      start,
		EndTime:        end,
		OvertimeHours:  db.ZeroOvertime,
		ShiftType:      shiftType,
		CustomDetails:  in.CustomDetails,
		ApprovalStatus: status,
	}

	logger.Debug("Assigning shift",
		zap.String("employee_id", employee.ID),
		zap.String("shift_id", template.ID),
		zap.String("date", in.Date),
		zap.String("shift_type", shiftType),
		zap.String("approval_status", status))

	if err := store.ReplaceAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to place assignment: %w", err)
	}

	logger.Info("Shift assigned",
		zap.String("assignment_id", assignment.ID),
		zap.String("employee", employee.FullName()),
		zap.String("date", in.Date))

	return assignment, nil
}
