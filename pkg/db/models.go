package db

import "strings"

// Shift classifications. REST and OFF assignments need approval before they
// count as confirmed; Regular assignments never do.
const (
	ShiftRegular = "Regular"
	ShiftRest    = "REST"
	ShiftOff     = "OFF"
)

// Approval statuses for an assignment.
const (
	StatusApproved = "Approved"
	StatusPending  = "Pending"
	StatusRejected = "Rejected"
)

// ZeroOvertime is the overtime value of an assignment with no recorded times.
const ZeroOvertime = "00:00"

// Employee is a member of a team that shifts are assigned to.
// TotalOvertime is the signed HH:MM sum over all of the employee's
// assignments; it is derived and recomputed whenever actual times change.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Team          string
	Email         string
	TotalOvertime string
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ShiftTemplate is a reusable named shift definition. StartTime and EndTime
// may be empty for non-timed templates (custom all-day markers).
// Assignments snapshot these fields at creation, so editing a template never
// rewrites history.
type ShiftTemplate struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
	BgColor   string
	TextColor string
	IsActive  bool
}

// Assignment is one employee's shift record for one calendar date.
// At most one assignment exists per (employee, date); assigning into an
// occupied slot replaces the old record entirely.
type Assignment struct {
	ID              string
	EmployeeID      string
	ShiftID         string
	Date            string // 2006-01-02
	StartTime       string // snapshot of the template's nominal start
	EndTime         string
	ActualStartTime string
	ActualEndTime   string
	OvertimeHours   string // signed HH:MM for this assignment alone
	ShiftType       string
	CustomDetails   string
	ApprovalStatus  string
}

// DisplayStatus returns the approval status to surface for a given shift
// name. Only REST/OFF shifts expose their real status; everything else
// always reads as approved.
func (a Assignment) DisplayStatus(shiftName string) string {
	switch strings.ToUpper(shiftName) {
	case ShiftRest, ShiftOff:
		return a.ApprovalStatus
	}
	return StatusApproved
}

// AssignmentDetail is an assignment joined with its employee and shift
// template, mapped once at the storage boundary.
type AssignmentDetail struct {
	Assignment

	EmployeeName string
	Team         string
	ShiftName    string
	BgColor      string
	TextColor    string
}
