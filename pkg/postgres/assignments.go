package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nextshift/shiftboard/pkg/db"
)

const assignmentColumns = `es.id, es.employee_id, es.shift_id, es.date,
	es.start_time, es.end_time, es.actual_start_time, es.actual_end_time,
	es.overtime_hours, es.shift_type, es.custom_details, es.approval_status`

// scanAssignment maps one employee_shift row onto the typed struct.
// The extra destinations, if any, receive the joined columns.
func scanAssignment(row pgx.Row, a *db.Assignment, extra ...any) error {
	var date time.Time
	var start, end, actualStart, actualEnd, details *string

	dest := []any{
		&a.ID, &a.EmployeeID, &a.ShiftID, &date,
		&start, &end, &actualStart, &actualEnd,
		&a.OvertimeHours, &a.ShiftType, &details, &a.ApprovalStatus,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	a.Date = date.Format("2006-01-02")
	if start != nil {
		a.StartTime = *start
	}
	if end != nil {
		a.EndTime = *end
	}
	if actualStart != nil {
		a.ActualStartTime = *actualStart
	}
	if actualEnd != nil {
		a.ActualEndTime = *actualEnd
	}
	if details != nil {
		a.CustomDetails = *details
	}
	return nil
}

// GetAssignment retrieves a single assignment by id
func (d *DB) GetAssignment(ctx context.Context, id string) (*db.Assignment, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+assignmentColumns+`
		FROM employee_shift es
		WHERE es.id = $1
	`, id)

	var a db.Assignment
	if err := scanAssignment(row, &a); err != nil {
		return nil, fmt.Errorf("failed to get assignment %s: %w", id, notFound(err))
	}
	return &a, nil
}

// GetAssignmentBySlot retrieves the assignment occupying an (employee, date)
// slot, or db.ErrNotFound when the slot is free.
func (d *DB) GetAssignmentBySlot(ctx context.Context, employeeID, date string) (*db.Assignment, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+assignmentColumns+`
		FROM employee_shift es
		WHERE es.employee_id = $1 AND es.date = $2
	`, employeeID, date)

	var a db.Assignment
	if err := scanAssignment(row, &a); err != nil {
		return nil, fmt.Errorf("failed to get assignment for slot (%s, %s): %w", employeeID, date, notFound(err))
	}
	return &a, nil
}

// GetAssignmentsByEmployee retrieves all assignments for one employee
func (d *DB) GetAssignmentsByEmployee(ctx context.Context, employeeID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM employee_shift es
		WHERE es.employee_id = $1
		ORDER BY es.date
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := scanAssignment(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

const detailJoin = `
	FROM employee_shift es
	LEFT JOIN employees e ON es.employee_id = e.id
	LEFT JOIN shifts s ON es.shift_id = s.id`

const detailColumns = `,
	COALESCE(e.first_name || ' ' || e.last_name, ''),
	COALESCE(e.team, ''),
	COALESCE(s.name, ''), COALESCE(s.bg_color, ''), COALESCE(s.text_color, '')`

func (d *DB) queryDetails(ctx context.Context, where string, args ...any) ([]db.AssignmentDetail, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+assignmentColumns+detailColumns+detailJoin+`
		`+where+`
		ORDER BY e.first_name, es.date
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment details: %w", err)
	}
	defer rows.Close()

	var details []db.AssignmentDetail
	for rows.Next() {
		var detail db.AssignmentDetail
		err := scanAssignment(rows, &detail.Assignment,
			&detail.EmployeeName, &detail.Team,
			&detail.ShiftName, &detail.BgColor, &detail.TextColor)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment detail: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment details: %w", err)
	}

	return details, nil
}

// GetAssignmentDetails retrieves every assignment joined with its employee
// and shift template, for the board view.
func (d *DB) GetAssignmentDetails(ctx context.Context) ([]db.AssignmentDetail, error) {
	return d.queryDetails(ctx, "")
}

// GetAssignmentDetailsByEmployee retrieves one employee's assignments with
// their template styling.
func (d *DB) GetAssignmentDetailsByEmployee(ctx context.Context, employeeID string) ([]db.AssignmentDetail, error) {
	return d.queryDetails(ctx, `WHERE es.employee_id = $1`, employeeID)
}

// GetPendingRequests retrieves assignments still awaiting approval
func (d *DB) GetPendingRequests(ctx context.Context) ([]db.AssignmentDetail, error) {
	return d.queryDetails(ctx, `WHERE es.approval_status = $1`, db.StatusPending)
}

// ReplaceAssignment deletes whatever occupies the record's (employee, date)
// slot and inserts the new record, inside one transaction. A reader never
// observes the slot empty between the two statements.
func (d *DB) ReplaceAssignment(ctx context.Context, assignment *db.Assignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM employee_shift WHERE employee_id = $1 AND date = $2
	`, assignment.EmployeeID, assignment.Date)
	if err != nil {
		return fmt.Errorf("failed to clear slot (%s, %s): %w (%w)",
			assignment.EmployeeID, assignment.Date, db.ErrConflict, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO employee_shift (id, employee_id, shift_id, date,
			start_time, end_time, overtime_hours, shift_type, custom_details, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, assignment.ID, assignment.EmployeeID, assignment.ShiftID, assignment.Date,
		nullable(assignment.StartTime), nullable(assignment.EndTime),
		assignment.OvertimeHours, assignment.ShiftType,
		nullable(assignment.CustomDetails), assignment.ApprovalStatus)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w (%w)", db.ErrConflict, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assignment replace: %w (%w)", db.ErrConflict, err)
	}

	return nil
}

// UpdateAssignment overwrites the scheduling fields of an existing record.
// Actual times and overtime are deliberately left alone; see SetActualTimes.
func (d *DB) UpdateAssignment(ctx context.Context, assignment *db.Assignment) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE employee_shift
		SET employee_id = $2, shift_id = $3, date = $4,
			start_time = $5, end_time = $6, shift_type = $7,
			custom_details = $8, approval_status = $9
		WHERE id = $1
	`, assignment.ID, assignment.EmployeeID, assignment.ShiftID, assignment.Date,
		nullable(assignment.StartTime), nullable(assignment.EndTime),
		assignment.ShiftType, nullable(assignment.CustomDetails), assignment.ApprovalStatus)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update assignment %s: %w", assignment.ID, db.ErrNotFound)
	}
	return nil
}

// DeleteAssignment removes an assignment; false means the id did not exist
func (d *DB) DeleteAssignment(ctx context.Context, id string) (bool, error) {
	tag, err := d.pool.Exec(ctx, `DELETE FROM employee_shift WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete assignment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetApprovalStatus updates only the approval status column
func (d *DB) SetApprovalStatus(ctx context.Context, id, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE employee_shift SET approval_status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to set approval status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to set approval status for %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// SetActualTimes persists recorded clock times and the recomputed overtime
func (d *DB) SetActualTimes(ctx context.Context, id, actualStart, actualEnd, overtime string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE employee_shift
		SET actual_start_time = $2, actual_end_time = $3, overtime_hours = $4
		WHERE id = $1
	`, id, nullable(actualStart), nullable(actualEnd), overtime)
	if err != nil {
		return fmt.Errorf("failed to set actual times: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to set actual times for %s: %w", id, db.ErrNotFound)
	}
	return nil
}
