// Package export renders the schedule board to an Excel workbook.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/timeutil"
)

const boardSheet = "Schedule"

var boardHeader = []string{
	"Team", "Employee", "Date", "Shift", "Start", "End",
	"Actual Start", "Actual End", "Overtime", "Status", "Details",
}

// BoardWorkbook builds an .xlsx workbook from the schedule board, one row
// per assignment, grouped by team. Shift cells carry the template's colors.
func BoardWorkbook(view *engine.BoardView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", boardSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDDDDD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range boardHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(boardSheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetCellStyle(boardSheet, "A1", "K1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for _, team := range view.TeamNames {
		for _, detail := range view.Teams[team] {
			values := []any{
				team,
				detail.EmployeeName,
				detail.Date,
				detail.ShiftName,
				timeutil.FormatDisplay(detail.StartTime),
				timeutil.FormatDisplay(detail.EndTime),
				timeutil.FormatDisplay(detail.ActualStartTime),
				timeutil.FormatDisplay(detail.ActualEndTime),
				detail.OvertimeHours,
				detail.DisplayStatus(detail.ShiftName),
				detail.CustomDetails,
			}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return nil, fmt.Errorf("failed to build cell: %w", err)
				}
				if err := f.SetCellValue(boardSheet, cell, value); err != nil {
					return nil, fmt.Errorf("failed to write row: %w", err)
				}
			}

			if err := styleShiftCell(f, boardSheet, 4, row, detail); err != nil {
				return nil, err
			}

			row++
		}
	}

	if err := f.SetColWidth(boardSheet, "A", "K", 14); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}
	if err := f.SetColWidth(boardSheet, "B", "B", 22); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	return f, nil
}

// WriteBoardFile saves the board workbook under dir with a timestamped name
// and returns the full path. dir defaults to the working directory.
func WriteBoardFile(view *engine.BoardView, dir string) (string, error) {
	f, err := BoardWorkbook(view)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("schedule_%s.xlsx", time.Now().Format("2006-01-02_15-04-05")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return path, nil
}
