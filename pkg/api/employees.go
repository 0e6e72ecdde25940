package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/core/overtime"
	"github.com/nextshift/shiftboard/pkg/db"
)

// ListEmployees returns all employees.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.GetEmployees(r.Context())
	if err != nil {
		h.writeError(w, 0, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	employee, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		h.writeError(w, 0, "Failed to get employee", err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeDTO(*employee))
}

// CreateEmployee creates a new employee.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		h.writeError(w, http.StatusBadRequest, "First and last name are required", db.ErrValidation)
		return
	}

	employee := &db.Employee{
		ID:            uuid.New().String(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Team:          req.Team,
		Email:         req.Email,
		TotalOvertime: db.ZeroOvertime,
	}

	if err := h.Store.InsertEmployee(r.Context(), employee); err != nil {
		h.writeError(w, 0, "Failed to create employee", err)
		return
	}

	h.Logger.Info("Employee created",
		zap.String("employee_id", employee.ID),
		zap.String("name", employee.FullName()))

	writeJSON(w, http.StatusCreated, toEmployeeDTO(*employee))
}

// UpdateEmployee updates an employee's name, team and email.
// PUT /api/employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		h.writeError(w, http.StatusBadRequest, "First and last name are required", db.ErrValidation)
		return
	}

	employee := &db.Employee{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Team:      req.Team,
		Email:     req.Email,
	}

	if err := h.Store.UpdateEmployee(r.Context(), employee); err != nil {
		h.writeError(w, 0, "Failed to update employee", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteEmployee removes an employee and their assignments.
// DELETE /api/employees/{id}
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.Store.DeleteEmployee(r.Context(), id)
	if err != nil {
		h.writeError(w, 0, "Failed to delete employee", err)
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}

	h.Logger.Info("Employee deleted", zap.String("employee_id", id))

	w.WriteHeader(http.StatusNoContent)
}

// GetEmployeeSchedule returns one employee's assignments and overtime total.
// GET /api/employees/{id}/schedule
func (h *Handler) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	schedule, err := overtime.EmployeeSchedule(r.Context(), h.Store, id)
	if err != nil {
		h.writeError(w, 0, "Failed to load schedule", err)
		return
	}

	writeJSON(w, http.StatusOK, ScheduleResponse{
		Employee:      toEmployeeDTO(schedule.Employee),
		Assignments:   toDetailDTOs(schedule.Assignments),
		TotalOvertime: schedule.TotalOvertime,
	})
}
