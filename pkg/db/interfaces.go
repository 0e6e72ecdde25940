package db

import "context"

// EmployeeStore defines employee persistence operations.
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	InsertEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployee(ctx context.Context, employee *Employee) error
	DeleteEmployee(ctx context.Context, id string) (bool, error)
	SetEmployeeTotalOvertime(ctx context.Context, id, total string) error
}

// TemplateStore defines shift template persistence operations.
type TemplateStore interface {
	GetTemplates(ctx context.Context) ([]ShiftTemplate, error)
	GetActiveTemplates(ctx context.Context) ([]ShiftTemplate, error)
	GetTemplate(ctx context.Context, id string) (*ShiftTemplate, error)
	InsertTemplate(ctx context.Context, template *ShiftTemplate) error
	UpdateTemplate(ctx context.Context, template *ShiftTemplate) error
	ToggleTemplateActive(ctx context.Context, id string) error
}

// AssignmentStore defines assignment persistence operations.
//
// ReplaceAssignment removes any existing assignment for the new record's
// (employee, date) slot and inserts the new record inside one transaction,
// so no reader ever observes an empty slot mid-replace.
type AssignmentStore interface {
	GetAssignment(ctx context.Context, id string) (*Assignment, error)
	GetAssignmentBySlot(ctx context.Context, employeeID, date string) (*Assignment, error)
	GetAssignmentsByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)
	GetAssignmentDetails(ctx context.Context) ([]AssignmentDetail, error)
	GetAssignmentDetailsByEmployee(ctx context.Context, employeeID string) ([]AssignmentDetail, error)
	GetPendingRequests(ctx context.Context) ([]AssignmentDetail, error)
	ReplaceAssignment(ctx context.Context, assignment *Assignment) error
	UpdateAssignment(ctx context.Context, assignment *Assignment) error
	DeleteAssignment(ctx context.Context, id string) (bool, error)
	SetApprovalStatus(ctx context.Context, id, status string) error
	SetActualTimes(ctx context.Context, id, actualStart, actualEnd, overtime string) error
}

// Store is the full storage surface the services run against.
// postgres.DB implements it; tests substitute in-memory fakes.
type Store interface {
	EmployeeStore
	TemplateStore
	AssignmentStore
}
