// Package memory provides an in-memory db.Store for tests and local
// development. It mirrors the postgres implementation's ordering and
// sentinel-error behavior so services behave identically against either.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/nextshift/shiftboard/pkg/db"
)

type Store struct {
	mu sync.RWMutex

	employees   map[string]db.Employee
	templates   map[string]db.ShiftTemplate
	assignments map[string]db.Assignment

	templateOrder []string
}

var _ db.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		employees:   make(map[string]db.Employee),
		templates:   make(map[string]db.ShiftTemplate),
		assignments: make(map[string]db.Assignment),
	}
}

// --- employees ---

func (s *Store) GetEmployees(_ context.Context) ([]db.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees := make([]db.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].FirstName != employees[j].FirstName {
			return employees[i].FirstName < employees[j].FirstName
		}
		return employees[i].LastName < employees[j].LastName
	})
	return employees, nil
}

func (s *Store) GetEmployee(_ context.Context, id string) (*db.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return nil, fmt.Errorf("failed to get employee %s: %w", id, db.ErrNotFound)
	}
	return &e, nil
}

func (s *Store) InsertEmployee(_ context.Context, employee *db.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if employee.TotalOvertime == "" {
		employee.TotalOvertime = db.ZeroOvertime
	}
	s.employees[employee.ID] = *employee
	return nil
}

func (s *Store) UpdateEmployee(_ context.Context, employee *db.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.employees[employee.ID]
	if !ok {
		return fmt.Errorf("failed to update employee %s: %w", employee.ID, db.ErrNotFound)
	}
	current.FirstName = employee.FirstName
	current.LastName = employee.LastName
	current.Team = employee.Team
	current.Email = employee.Email
	s.employees[employee.ID] = current
	return nil
}

func (s *Store) DeleteEmployee(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return false, nil
	}
	delete(s.employees, id)
	for aid, a := range s.assignments {
		if a.EmployeeID == id {
			delete(s.assignments, aid)
		}
	}
	return true, nil
}

func (s *Store) SetEmployeeTotalOvertime(_ context.Context, id, total string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.employees[id]
	if !ok {
		return fmt.Errorf("failed to set total overtime for %s: %w", id, db.ErrNotFound)
	}
	e.TotalOvertime = total
	s.employees[id] = e
	return nil
}

// --- shift templates ---

func (s *Store) GetTemplates(_ context.Context) ([]db.ShiftTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listTemplates(func(db.ShiftTemplate) bool { return true }), nil
}

func (s *Store) GetActiveTemplates(_ context.Context) ([]db.ShiftTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listTemplates(func(t db.ShiftTemplate) bool { return t.IsActive }), nil
}

// listTemplates returns templates in creation order, matching the postgres
// store's ORDER BY created_at.
func (s *Store) listTemplates(keep func(db.ShiftTemplate) bool) []db.ShiftTemplate {
	var templates []db.ShiftTemplate
	for _, id := range s.templateOrder {
		if t, ok := s.templates[id]; ok && keep(t) {
			templates = append(templates, t)
		}
	}
	return templates
}

func (s *Store) GetTemplate(_ context.Context, id string) (*db.ShiftTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, fmt.Errorf("failed to get shift template %s: %w", id, db.ErrNotFound)
	}
	return &t, nil
}

func (s *Store) InsertTemplate(_ context.Context, template *db.ShiftTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates[template.ID] = *template
	s.templateOrder = append(s.templateOrder, template.ID)
	return nil
}

func (s *Store) UpdateTemplate(_ context.Context, template *db.ShiftTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.templates[template.ID]
	if !ok {
		return fmt.Errorf("failed to update shift template %s: %w", template.ID, db.ErrNotFound)
	}
	updated := *template
	updated.IsActive = current.IsActive
	s.templates[template.ID] = updated
	return nil
}

func (s *Store) ToggleTemplateActive(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.templates[id]
	if !ok {
		return fmt.Errorf("failed to toggle shift template %s: %w", id, db.ErrNotFound)
	}
	t.IsActive = !t.IsActive
	s.templates[id] = t
	return nil
}

// --- assignments ---

func (s *Store) GetAssignment(_ context.Context, id string) (*db.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assignments[id]
	if !ok {
		return nil, fmt.Errorf("failed to get assignment %s: %w", id, db.ErrNotFound)
	}
	return &a, nil
}

func (s *Store) GetAssignmentBySlot(_ context.Context, employeeID, date string) (*db.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.assignments {
		if a.EmployeeID == employeeID && a.Date == date {
			assignment := a
			return &assignment, nil
		}
	}
	return nil, fmt.Errorf("failed to get assignment for slot (%s, %s): %w", employeeID, date, db.ErrNotFound)
}

func (s *Store) GetAssignmentsByEmployee(_ context.Context, employeeID string) ([]db.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var assignments []db.Assignment
	for _, a := range s.assignments {
		if a.EmployeeID == employeeID {
			assignments = append(assignments, a)
		}
	}
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].Date < assignments[j].Date
	})
	return assignments, nil
}

func (s *Store) GetAssignmentDetails(ctx context.Context) ([]db.AssignmentDetail, error) {
	return s.details(func(db.Assignment) bool { return true })
}

func (s *Store) GetAssignmentDetailsByEmployee(_ context.Context, employeeID string) ([]db.AssignmentDetail, error) {
	return s.details(func(a db.Assignment) bool { return a.EmployeeID == employeeID })
}

func (s *Store) GetPendingRequests(_ context.Context) ([]db.AssignmentDetail, error) {
	return s.details(func(a db.Assignment) bool { return a.ApprovalStatus == db.StatusPending })
}

func (s *Store) details(keep func(db.Assignment) bool) ([]db.AssignmentDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var details []db.AssignmentDetail
	for _, a := range s.assignments {
		if !keep(a) {
			continue
		}
		detail := db.AssignmentDetail{Assignment: a}
		if e, ok := s.employees[a.EmployeeID]; ok {
			detail.EmployeeName = e.FullName()
			detail.Team = e.Team
		}
		if t, ok := s.templates[a.ShiftID]; ok {
			detail.ShiftName = t.Name
			detail.BgColor = t.BgColor
			detail.TextColor = t.TextColor
		}
		details = append(details, detail)
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].EmployeeName != details[j].EmployeeName {
			return strings.ToLower(details[i].EmployeeName) < strings.ToLower(details[j].EmployeeName)
		}
		return details[i].Date < details[j].Date
	})
	return details, nil
}

func (s *Store) ReplaceAssignment(_ context.Context, assignment *db.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.assignments {
		if a.EmployeeID == assignment.EmployeeID && a.Date == assignment.Date {
			delete(s.assignments, id)
		}
	}
	s.assignments[assignment.ID] = *assignment
	return nil
}

func (s *Store) UpdateAssignment(_ context.Context, assignment *db.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.assignments[assignment.ID]
	if !ok {
		return fmt.Errorf("failed to update assignment %s: %w", assignment.ID, db.ErrNotFound)
	}

	current.EmployeeID = assignment.EmployeeID
	current.ShiftID = assignment.ShiftID
	current.Date = assignment.Date
	current.StartTime = assignment.StartTime
	current.EndTime = assignment.EndTime
	current.ShiftType = assignment.ShiftType
	current.CustomDetails = assignment.CustomDetails
	current.ApprovalStatus = assignment.ApprovalStatus
	s.assignments[assignment.ID] = current
	return nil
}

func (s *Store) DeleteAssignment(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[id]; !ok {
		return false, nil
	}
	delete(s.assignments, id)
	return true, nil
}

func (s *Store) SetApprovalStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assignments[id]
	if !ok {
		return fmt.Errorf("failed to set approval status for %s: %w", id, db.ErrNotFound)
	}
	a.ApprovalStatus = status
	s.assignments[id] = a
	return nil
}

func (s *Store) SetActualTimes(_ context.Context, id, actualStart, actualEnd, overtime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assignments[id]
	if !ok {
		return fmt.Errorf("failed to set actual times for %s: %w", id, db.ErrNotFound)
	}
	a.ActualStartTime = actualStart
	a.ActualEndTime = actualEnd
	a.OvertimeHours = overtime
	s.assignments[id] = a
	return nil
}
