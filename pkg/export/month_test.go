package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWorkbook(t *testing.T) {
	f, err := MonthWorkbook(sampleBoard(), 2024, time.January)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "January 2024"

	// 2 fixed columns + 31 days.
	first, err := f.GetCellValue(sheet, "C1")
	require.NoError(t, err)
	assert.Equal(t, "01 Mon", first)

	last, err := f.GetCellValue(sheet, "AG1")
	require.NoError(t, err)
	assert.Equal(t, "31 Wed", last)

	employee, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", employee)

	// 2024-01-10 lands in column L (10th day).
	shift, err := f.GetCellValue(sheet, "L2")
	require.NoError(t, err)
	assert.Equal(t, "Morning", shift)

	team, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Bravo", team)
}

func TestMonthWorkbook_IgnoresOtherMonths(t *testing.T) {
	f, err := MonthWorkbook(sampleBoard(), 2024, time.February)
	require.NoError(t, err)
	defer f.Close()

	// Rows still list the employees, but no shift cells are filled.
	employee, err := f.GetCellValue("February 2024", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", employee)

	rows, err := f.GetRows("February 2024")
	require.NoError(t, err)
	for _, row := range rows[1:] {
		for _, cell := range row[2:] {
			assert.Empty(t, cell)
		}
	}
}

func TestWriteMonthFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteMonthFile(sampleBoard(), dir, 2024, time.January)
	require.NoError(t, err)
	assert.Contains(t, path, "schedule_2024-01.xlsx")
	assert.FileExists(t, path)
}
