package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/db"
	"github.com/nextshift/shiftboard/pkg/timeutil"
)

// MonthWorkbook builds a month-grid workbook: one row per employee, one
// column per calendar day, each cell carrying the shift name in the
// template's colors. Assignments outside the month are left out.
func MonthWorkbook(view *engine.BoardView, year int, month time.Month) (*excelize.File, error) {
	sheet := fmt.Sprintf("%s %d", month.String(), year)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDDDDD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	dates := timeutil.MonthDates(year, month)

	if err := setCell(f, sheet, 1, 1, "Team"); err != nil {
		return nil, err
	}
	if err := setCell(f, sheet, 2, 1, "Employee"); err != nil {
		return nil, err
	}
	for i, date := range dates {
		if err := setCell(f, sheet, i+3, 1, date.Format("02 Mon")); err != nil {
			return nil, err
		}
	}

	lastHeader, _ := excelize.CoordinatesToCellName(len(dates)+2, 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	// Column per "2006-01-02" date string for cell placement.
	columnByDate := make(map[string]int, len(dates))
	for i, date := range dates {
		columnByDate[date.Format(engine.DateLayout)] = i + 3
	}

	row := 2
	for _, team := range view.TeamNames {
		rowByEmployee := make(map[string]int)
		for _, detail := range view.Teams[team] {
			employeeRow, seen := rowByEmployee[detail.EmployeeID]
			if !seen {
				employeeRow = row
				rowByEmployee[detail.EmployeeID] = row
				if err := setCell(f, sheet, 1, employeeRow, team); err != nil {
					return nil, err
				}
				if err := setCell(f, sheet, 2, employeeRow, detail.EmployeeName); err != nil {
					return nil, err
				}
				row++
			}

			col, inMonth := columnByDate[detail.Date]
			if !inMonth {
				continue
			}

			if err := setCell(f, sheet, col, employeeRow, detail.ShiftName); err != nil {
				return nil, err
			}
			if err := styleShiftCell(f, sheet, col, employeeRow, detail); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 22); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	return f, nil
}

// WriteMonthFile saves the month-grid workbook under dir and returns the
// full path. dir defaults to the working directory.
func WriteMonthFile(view *engine.BoardView, dir string, year int, month time.Month) (string, error) {
	f, err := MonthWorkbook(view, year, month)
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

	path := filepath.Join(dir, fmt.Sprintf("schedule_%d-%02d.xlsx", year, int(month)))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return path, nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to build cell: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell: %w", err)
	}
	return nil
}

func styleShiftCell(f *excelize.File, sheet string, col, row int, detail db.AssignmentDetail) error {
	if detail.BgColor == "" {
		return nil
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: detail.TextColor},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{detail.BgColor}},
	})
	if err != nil {
		return fmt.Errorf("failed to create shift style: %w", err)
	}

	cell, _ := excelize.CoordinatesToCellName(col, row)
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("failed to style shift cell: %w", err)
	}
	return nil
}
