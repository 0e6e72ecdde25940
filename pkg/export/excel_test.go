package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/db"
)

func sampleBoard() *engine.BoardView {
	return &engine.BoardView{
		TeamNames: []string{"Alpha", "Bravo"},
		Teams: map[string][]db.AssignmentDetail{
			"Alpha": {
				{
					Assignment: db.Assignment{
						Date:            "2024-01-10",
						StartTime:       "08:00",
						EndTime:         "16:00",
						ActualStartTime: "08:00",
						ActualEndTime:   "18:00",
						OvertimeHours:   "02:00",
						ShiftType:       db.ShiftRegular,
						ApprovalStatus:  db.StatusApproved,
					},
					EmployeeName: "Dana Reyes",
					Team:         "Alpha",
					ShiftName:    "Morning",
					BgColor:      "#2d6cdf",
					TextColor:    "#ffffff",
				},
			},
			"Bravo": {
				{
					Assignment: db.Assignment{
						Date:           "2024-01-11",
						OvertimeHours:  db.ZeroOvertime,
						ShiftType:      db.ShiftRest,
						ApprovalStatus: db.StatusPending,
					},
					EmployeeName: "Priya Nair",
					Team:         "Bravo",
					ShiftName:    "Rest",
					BgColor:      "#8a8f98",
					TextColor:    "#ffffff",
				},
			},
		},
	}
}

func TestBoardWorkbook(t *testing.T) {
	f, err := BoardWorkbook(sampleBoard())
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(boardSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Team", header)

	employee, err := f.GetCellValue(boardSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", employee)

	start, err := f.GetCellValue(boardSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "08:00 AM", start)

	overtime, err := f.GetCellValue(boardSheet, "I2")
	require.NoError(t, err)
	assert.Equal(t, "02:00", overtime)

	// Regular shifts always read as approved; requests show their real state.
	status, err := f.GetCellValue(boardSheet, "J2")
	require.NoError(t, err)
	assert.Equal(t, db.StatusApproved, status)

	restStatus, err := f.GetCellValue(boardSheet, "J3")
	require.NoError(t, err)
	assert.Equal(t, db.StatusPending, restStatus)
}

func TestWriteBoardFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteBoardFile(sampleBoard(), dir)
	require.NoError(t, err)
	assert.Contains(t, path, dir)
	assert.FileExists(t, path)
}
