package postgres

import (
	"context"
	"fmt"

	"github.com/nextshift/shiftboard/pkg/db"
)

// GetEmployees retrieves all employees ordered by name
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, team, email, total_overtime
		FROM employees
		ORDER BY first_name, last_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Team, &e.Email, &e.TotalOvertime); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetEmployee retrieves a single employee by id
func (d *DB) GetEmployee(ctx context.Context, id string) (*db.Employee, error) {
	var e db.Employee
	err := d.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, team, email, total_overtime
		FROM employees
		WHERE id = $1
	`, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Team, &e.Email, &e.TotalOvertime)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", id, notFound(err))
	}
	return &e, nil
}

// InsertEmployee inserts a new employee record
func (d *DB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	if employee.TotalOvertime == "" {
		employee.TotalOvertime = db.ZeroOvertime
	}
	_, err := d.pool.Exec(ctx, `
		INSERT INTO employees (id, first_name, last_name, team, email, total_overtime)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, employee.ID, employee.FirstName, employee.LastName, employee.Team, employee.Email, employee.TotalOvertime)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// UpdateEmployee replaces an employee's editable fields
func (d *DB) UpdateEmployee(ctx context.Context, employee *db.Employee) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE employees
		SET first_name = $2, last_name = $3, team = $4, email = $5
		WHERE id = $1
	`, employee.ID, employee.FirstName, employee.LastName, employee.Team, employee.Email)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update employee %s: %w", employee.ID, db.ErrNotFound)
	}
	return nil
}

// DeleteEmployee removes an employee; false means the id did not exist
func (d *DB) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	tag, err := d.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetEmployeeTotalOvertime persists the recomputed aggregate overtime
func (d *DB) SetEmployeeTotalOvertime(ctx context.Context, id, total string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE employees SET total_overtime = $2 WHERE id = $1
	`, id, total)
	if err != nil {
		return fmt.Errorf("failed to set total overtime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to set total overtime for %s: %w", id, db.ErrNotFound)
	}
	return nil
}
