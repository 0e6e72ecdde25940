package overtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
	"github.com/nextshift/shiftboard/pkg/db/memory"
)

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.InsertEmployee(ctx, &db.Employee{
		ID: "emp-1", FirstName: "Dana", LastName: "Reyes", Team: "Alpha",
	}))
	require.NoError(t, store.InsertTemplate(ctx, &db.ShiftTemplate{
		ID: "shift-morning", Name: "Morning", StartTime: "08:00", EndTime: "16:00", IsActive: true,
	}))
	require.NoError(t, store.InsertTemplate(ctx, &db.ShiftTemplate{
		ID: "shift-night", Name: "Night", StartTime: "22:00", EndTime: "06:00", IsActive: true,
	}))
	require.NoError(t, store.InsertTemplate(ctx, &db.ShiftTemplate{
		ID: "shift-rest", Name: "Rest", IsActive: true,
	}))

	return store
}

func seedAssignment(t *testing.T, store *memory.Store, id, shiftID, date string) {
	t.Helper()
	require.NoError(t, store.ReplaceAssignment(context.Background(), &db.Assignment{
		ID:             id,
		EmployeeID:     "emp-1",
		ShiftID:        shiftID,
		Date:           date,
		OvertimeHours:  db.ZeroOvertime,
		ShiftType:      db.ShiftRegular,
		ApprovalStatus: db.StatusApproved,
	}))
}

func TestRecordActualTimes_OvertimeBeyondScheduledEnd(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	seedAssignment(t, store, "a-1", "shift-morning", "2024-01-10")

	require.NoError(t, RecordActualTimes(ctx, store, zap.NewNop(), "a-1", "08:00", "18:00"))

	assignment, err := store.GetAssignment(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "08:00", assignment.ActualStartTime)
	assert.Equal(t, "18:00", assignment.ActualEndTime)
	assert.Equal(t, "02:00", assignment.OvertimeHours)

	employee, err := store.GetEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "02:00", employee.TotalOvertime)
}

func TestRecordActualTimes_ExactScheduleIsZero(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	seedAssignment(t, store, "a-1", "shift-morning", "2024-01-10")

	require.NoError(t, RecordActualTimes(ctx, store, zap.NewNop(), "a-1", "08:00", "16:00"))

	assignment, err := store.GetAssignment(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, db.ZeroOvertime, assignment.OvertimeHours)
}

func TestRecordActualTimes_ShorterShiftNeverGoesNegative(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	seedAssignment(t, store, "a-1", "shift-morning", "2024-01-10")

	require.NoError(t, RecordActualTimes(ctx, store, zap.NewNop(), "a-1", "09:00", "15:00"))

	assignment, err := store.GetAssignment(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, db.ZeroOvertime, assignment.OvertimeHours)
}

func TestRecordActualTimes_MidnightCrossing(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	seedAssignment(t, store, "a-1", "shift-night", "2024-01-10")

	// Worked 22:00 to 07:00 against a 22:00-06:00 night shift: both spans
	// cross midnight, one hour over.
	require.NoError(t, RecordActualTimes(ctx, store, zap.NewNop(), "a-1", "22:00", "07:00"))

	assignment, err := store.GetAssignment(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "01:00", assignment.OvertimeHours)
}

func TestRecordActualTimes_PartialUpdateKeepsStoredSide(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	logger := zap.NewNop()
	seedAssignment(t, store, "a-1", "shift-morning", "2024-01-10")

	require.NoError(t, RecordActualTimes(ctx, store, logger, "a-1", "08:00", "17:00"))

	// Correct just the end; the stored start carries over.
	require.NoError(t, RecordActualTimes(ctx, store, logger, "a-1", "", "19:00"))

	assignment, err := store.GetAssignment(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "08:00", assignment.ActualStartTime)
	assert.Equal(t, "19:00", assignment.ActualEndTime)
	assert.Equal(t, "03:00", assignment.OvertimeHours)
}

func TestRecordActualTimes_UntimedTemplateYieldsZero(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	seedAssignment(t, store, "a-1", "shift-rest", "2024-01-10")

	require.NoError(t, RecordActualTimes(ctx, store, zap.NewNop(), "a-1", "08:00", "18:00"))

	assignment, err := store.GetAssignment(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, db.ZeroOvertime, assignment.OvertimeHours)
}

func TestRecordActualTimes_UnknownAssignment(t *testing.T) {
	store := seedStore(t)

	err := RecordActualTimes(context.Background(), store, zap.NewNop(), "missing", "08:00", "18:00")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestRecomputeEmployeeTotal_SumsAcrossAssignments(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	logger := zap.NewNop()

	seedAssignment(t, store, "a-1", "shift-morning", "2024-01-10")
	seedAssignment(t, store, "a-2", "shift-morning", "2024-01-11")
	seedAssignment(t, store, "a-3", "shift-morning", "2024-01-12")

	require.NoError(t, RecordActualTimes(ctx, store, logger, "a-1", "08:00", "17:30"))
	require.NoError(t, RecordActualTimes(ctx, store, logger, "a-2", "08:00", "18:00"))
	// a-3 stays untouched, contributing 00:00.

	employee, err := store.GetEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "03:30", employee.TotalOvertime)
}

func TestEmployeeSchedule(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()
	logger := zap.NewNop()

	seedAssignment(t, store, "a-1", "shift-morning", "2024-01-10")
	seedAssignment(t, store, "a-2", "shift-night", "2024-01-11")
	require.NoError(t, RecordActualTimes(ctx, store, logger, "a-1", "08:00", "17:00"))

	schedule, err := EmployeeSchedule(ctx, store, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Dana Reyes", schedule.Employee.FullName())
	require.Len(t, schedule.Assignments, 2)
	assert.Equal(t, "01:00", schedule.TotalOvertime)
	assert.Equal(t, "Morning", schedule.Assignments[0].ShiftName)
}

func TestEmployeeSchedule_UnknownEmployee(t *testing.T) {
	store := seedStore(t)

	_, err := EmployeeSchedule(context.Background(), store, "missing")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestComputeOvertime(t *testing.T) {
	tests := []struct {
		name        string
		actualStart string
		actualEnd   string
		shiftStart  string
		shiftEnd    string
		want        string
	}{
		{"two hours over", "08:00", "18:00", "08:00", "16:00", "02:00"},
		{"exact", "08:00", "16:00", "08:00", "16:00", "00:00"},
		{"under floors at zero", "09:00", "15:00", "08:00", "16:00", "00:00"},
		{"legacy hour format", "8 AM", "6 PM", "8 AM", "4 PM", "02:00"},
		{"missing actual", "", "18:00", "08:00", "16:00", "00:00"},
		{"malformed actual", "late", "18:00", "08:00", "16:00", "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeOvertime(tt.actualStart, tt.actualEnd, tt.shiftStart, tt.shiftEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}
