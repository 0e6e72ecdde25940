package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
)

// Approve moves a pending REST/OFF request to approved. Only the
// Pending state may transition; approving anything else is an error.
func Approve(ctx context.Context, store db.Store, logger *zap.Logger, notifier Notifier, id string) error {
	assignment, err := store.GetAssignment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment.ApprovalStatus != db.StatusPending {
		return fmt.Errorf("assignment %s is %s, only pending requests can be approved: %w",
			id, assignment.ApprovalStatus, db.ErrValidation)
	}

	if err := store.SetApprovalStatus(ctx, id, db.StatusApproved); err != nil {
		return fmt.Errorf("failed to approve assignment: %w", err)
	}

	logger.Info("Request approved",
		zap.String("assignment_id", id),
		zap.String("employee_id", assignment.EmployeeID),
		zap.String("date", assignment.Date))

	notify(ctx, store, logger, notifier, assignment,
		"Time Off Approved",
		fmt.Sprintf("Your %s request for %s has been approved.", assignment.ShiftType, assignment.Date))

	return nil
}

// Reject removes a pending request entirely. A rejected request leaves no
// record behind; the slot is free for the next assignment.
func Reject(ctx context.Context, store db.Store, logger *zap.Logger, notifier Notifier, id string) error {
	assignment, err := store.GetAssignment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment.ApprovalStatus != db.StatusPending {
		return fmt.Errorf("assignment %s is %s, only pending requests can be rejected: %w",
			id, assignment.ApprovalStatus, db.ErrValidation)
	}

	if _, err := store.DeleteAssignment(ctx, id); err != nil {
		return fmt.Errorf("failed to reject assignment: %w", err)
	}

	logger.Info("Request rejected and removed",
		zap.String("assignment_id", id),
		zap.String("employee_id", assignment.EmployeeID),
		zap.String("date", assignment.Date))

	notify(ctx, store, logger, notifier, assignment,
		"Time Off Rejected",
		fmt.Sprintf("Your %s request for %s has been rejected.", assignment.ShiftType, assignment.Date))

	return nil
}

// notify emails the assignment's employee. Failures are logged and dropped.
func notify(ctx context.Context, store db.EmployeeStore, logger *zap.Logger, notifier Notifier, assignment *db.Assignment, subject, body string) {
	if notifier == nil {
		return
	}

	employee, err := store.GetEmployee(ctx, assignment.EmployeeID)
	if err != nil || employee.Email == "" {
		logger.Debug("Skipping notification, no address for employee",
			zap.String("employee_id", assignment.EmployeeID))
		return
	}

	if err := notifier.Notify(employee.Email, subject, body); err != nil {
		logger.Warn("Failed to send notification",
			zap.String("employee_id", employee.ID),
			zap.Error(err))
	}
}
