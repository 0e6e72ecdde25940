// Package overtime records actual worked times and keeps each employee's
// aggregate overtime consistent with their assignments.
package overtime

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
	"github.com/nextshift/shiftboard/pkg/timeutil"
)

// RecordActualTimes stores the clock-in/clock-out pair for an assignment and
// recomputes its overtime. Passing an empty start or end keeps whatever was
// recorded before, so one side can be corrected without retyping the other.
//
// The per-assignment write lands first; the employee-wide aggregate recompute
// runs after it and is best-effort, its failure logged rather than returned.
func RecordActualTimes(ctx context.Context, store db.Store, logger *zap.Logger, id, actualStart, actualEnd string) error {
	assignment, err := store.GetAssignment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load assignment: %w", err)
	}

	template, err := store.GetTemplate(ctx, assignment.ShiftID)
	if err != nil {
		return fmt.Errorf("failed to resolve shift template: %w", err)
	}

	if actualStart == "" {
		actualStart = assignment.ActualStartTime
	}
	if actualEnd == "" {
		actualEnd = assignment.ActualEndTime
	}

	overtime := computeOvertime(actualStart, actualEnd, template.StartTime, template.EndTime)

	logger.Debug("Recording actual times",
		zap.String("assignment_id", id),
		zap.String("actual_start", actualStart),
		zap.String("actual_end", actualEnd),
		zap.String("overtime", overtime))

	if err := store.SetActualTimes(ctx, id, actualStart, actualEnd, overtime); err != nil {
		return fmt.Errorf("failed to store actual times: %w", err)
	}

	if err := RecomputeEmployeeTotal(ctx, store, assignment.EmployeeID); err != nil {
		// The assignment write is already committed; the aggregate can be
		// rebuilt on the next recording.
		logger.Warn("Failed to recompute employee overtime total",
			zap.String("employee_id", assignment.EmployeeID),
			zap.Error(err))
	}

	return nil
}

// computeOvertime derives the signed HH:MM overtime for one assignment.
// Unless all four times resolve there is nothing to measure and the
// overtime is zero.
func computeOvertime(actualStart, actualEnd, shiftStart, shiftEnd string) string {
	aStart, okAS := timeutil.ParseClock(actualStart)
	aEnd, okAE := timeutil.ParseClock(actualEnd)
	sStart, okSS := timeutil.ParseClock(shiftStart)
	sEnd, okSE := timeutil.ParseClock(shiftEnd)

	if !okAS || !okAE || !okSS || !okSE {
		return db.ZeroOvertime
	}

	minutes := timeutil.OvertimeMinutes(aStart, aEnd, sStart, sEnd)
	return timeutil.MinutesToDuration(minutes)
}

// RecomputeEmployeeTotal resets an employee's aggregate overtime to the sum
// over all of their assignments.
func RecomputeEmployeeTotal(ctx context.Context, store db.Store, employeeID string) error {
	assignments, err := store.GetAssignmentsByEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to list assignments: %w", err)
	}

	durations := make([]string, 0, len(assignments))
	for _, a := range assignments {
		durations = append(durations, a.OvertimeHours)
	}

	total, err := timeutil.SumDurations(durations)
	if err != nil {
		return fmt.Errorf("failed to sum overtime: %w", err)
	}

	if err := store.SetEmployeeTotalOvertime(ctx, employeeID, total); err != nil {
		return fmt.Errorf("failed to store overtime total: %w", err)
	}

	return nil
}

// Schedule is one employee's assignments plus their running overtime total.
type Schedule struct {
	Employee      db.Employee
	Assignments   []db.AssignmentDetail
	TotalOvertime string
}

// EmployeeSchedule returns everything the personal schedule view needs.
// The total is recomputed from the assignments rather than read from the
// employee row, so a stale aggregate can never be displayed.
func EmployeeSchedule(ctx context.Context, store db.Store, employeeID string) (*Schedule, error) {
	employee, err := store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	details, err := store.GetAssignmentDetailsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	durations := make([]string, 0, len(details))
	for _, d := range details {
		durations = append(durations, d.OvertimeHours)
	}
	total, err := timeutil.SumDurations(durations)
	if err != nil {
		return nil, fmt.Errorf("failed to sum overtime: %w", err)
	}

	return &Schedule{
		Employee:      *employee,
		Assignments:   details,
		TotalOvertime: total,
	}, nil
}
