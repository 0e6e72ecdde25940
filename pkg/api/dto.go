package api

import "github.com/nextshift/shiftboard/pkg/db"

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreateAssignmentRequest places a shift on the board
type CreateAssignmentRequest struct {
	EmployeeID     string `json:"employee_id"`
	ShiftID        string `json:"shift_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time,omitempty"`
	EndTime        string `json:"end_time,omitempty"`
	CustomDetails  string `json:"custom_details,omitempty"`
	ShiftType      string `json:"shift_type,omitempty"`
	ApprovalStatus string `json:"approval_status,omitempty"`
}

// UpdateAssignmentRequest re-points an existing assignment
type UpdateAssignmentRequest struct {
	EmployeeID    string `json:"employee_id"`
	ShiftID       string `json:"shift_id"`
	Date          string `json:"date"`
	CustomDetails string `json:"custom_details,omitempty"`
}

// RecordTimesRequest records the worked clock-in/clock-out pair
type RecordTimesRequest struct {
	ActualStartTime string `json:"actual_start_time,omitempty"`
	ActualEndTime   string `json:"actual_end_time,omitempty"`
}

// AssignmentDTO is the wire form of one assignment with its joined context
type AssignmentDTO struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	Team            string `json:"team,omitempty"`
	ShiftID         string `json:"shift_id"`
	ShiftName       string `json:"shift_name,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	ActualStartTime string `json:"actual_start_time,omitempty"`
	ActualEndTime   string `json:"actual_end_time,omitempty"`
	OvertimeHours   string `json:"overtime_hours"`
	ShiftType       string `json:"shift_type"`
	CustomDetails   string `json:"custom_details,omitempty"`
	ApprovalStatus  string `json:"approval_status,omitempty"`
	BgColor         string `json:"bg_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
}

// BoardResponse groups assignments by team in a stable order
type BoardResponse struct {
	Teams map[string][]AssignmentDTO `json:"teams"`
	Order []string                   `json:"order"`
}

// EmployeeRequest creates or updates an employee
type EmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      string `json:"team,omitempty"`
	Email     string `json:"email,omitempty"`
}

// EmployeeDTO is the wire form of one employee
type EmployeeDTO struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Team          string `json:"team,omitempty"`
	Email         string `json:"email,omitempty"`
	TotalOvertime string `json:"total_overtime"`
}

// ScheduleResponse is one employee's assignments and overtime total
type ScheduleResponse struct {
	Employee      EmployeeDTO     `json:"employee"`
	Assignments   []AssignmentDTO `json:"assignments"`
	TotalOvertime string          `json:"total_overtime"`
}

// ShiftTemplateRequest creates or updates a shift template
type ShiftTemplateRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	BgColor   string `json:"bg_color"`
	TextColor string `json:"text_color"`
}

// ShiftTemplateDTO is the wire form of one shift template
type ShiftTemplateDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	BgColor   string `json:"bg_color"`
	TextColor string `json:"text_color"`
	IsActive  bool   `json:"is_active"`
}

func toAssignmentDTO(a db.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		ShiftID:         a.ShiftID,
		Date:            a.Date,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		ActualStartTime: a.ActualStartTime,
		ActualEndTime:   a.ActualEndTime,
		OvertimeHours:   a.OvertimeHours,
		ShiftType:       a.ShiftType,
		CustomDetails:   a.CustomDetails,
		ApprovalStatus:  a.ApprovalStatus,
	}
}

func toDetailDTO(d db.AssignmentDetail) AssignmentDTO {
	dto := toAssignmentDTO(d.Assignment)
	dto.EmployeeName = d.EmployeeName
	dto.Team = d.Team
	dto.ShiftName = d.ShiftName
	dto.BgColor = d.BgColor
	dto.TextColor = d.TextColor
	// Regular shifts read as approved; only REST/OFF expose their real state
	dto.ApprovalStatus = d.DisplayStatus(d.ShiftName)
	return dto
}

func toDetailDTOs(details []db.AssignmentDetail) []AssignmentDTO {
	dtos := make([]AssignmentDTO, len(details))
	for i, d := range details {
		dtos[i] = toDetailDTO(d)
	}
	return dtos
}

func toEmployeeDTO(e db.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Team:          e.Team,
		Email:         e.Email,
		TotalOvertime: e.TotalOvertime,
	}
}

func toTemplateDTO(t db.ShiftTemplate) ShiftTemplateDTO {
	return ShiftTemplateDTO{
		ID:        t.ID,
		Name:      t.Name,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		BgColor:   t.BgColor,
		TextColor: t.TextColor,
		IsActive:  t.IsActive,
	}
}
