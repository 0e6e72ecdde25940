package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/core/overtime"
	"github.com/nextshift/shiftboard/pkg/export"
	"github.com/nextshift/shiftboard/pkg/timeutil"
)

// BoardCmd creates the board command
func BoardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the full schedule board grouped by team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := engine.Board(app.Ctx, app.Store)
			if err != nil {
				return err
			}

			if len(view.TeamNames) == 0 {
				fmt.Println("The board is empty")
				return nil
			}

			for _, team := range view.TeamNames {
				fmt.Printf("\n%s\n", team)
				for _, d := range view.Teams[team] {
					times := ""
					if d.StartTime != "" {
						times = fmt.Sprintf("%s - %s", timeutil.FormatDisplay(d.StartTime), timeutil.FormatDisplay(d.EndTime))
					}
					status := d.DisplayStatus(d.ShiftName)
					fmt.Printf("  %s  %-22s %-10s %-19s %-8s %s\n",
						d.Date, d.EmployeeName, d.ShiftName, times, d.OvertimeHours, status)
				}
			}
			fmt.Println()

			return nil
		},
	}
}

// ExportBoardCmd creates the exportBoard command
func ExportBoardCmd(app *AppContext) *cobra.Command {
	var dir, month string

	cmd := &cobra.Command{
		Use:   "exportBoard",
		Short: "Export the schedule board to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := engine.Board(app.Ctx, app.Store)
			if err != nil {
				return err
			}

			if dir == "" {
				dir = app.Cfg.ExportDir
			}

			var path string
			if month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
				}
				path, err = export.WriteMonthFile(view, dir, parsed.Year(), parsed.Month())
				if err != nil {
					return err
				}
			} else {
				path, err = export.WriteBoardFile(view, dir)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Board exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the workbook to (defaults to exportDir from config)")
	cmd.Flags().StringVar(&month, "month", "", "Render a month grid for the given YYYY-MM instead of the flat listing")

	return cmd
}

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <employee_id>",
		Short: "Show one employee's assignments and overtime total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := overtime.EmployeeSchedule(app.Ctx, app.Store, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n%s (%s)\n", schedule.Employee.FullName(), schedule.Employee.Team)
			fmt.Printf("Total overtime: %s\n\n", schedule.TotalOvertime)

			for _, d := range schedule.Assignments {
				actual := ""
				if d.ActualStartTime != "" || d.ActualEndTime != "" {
					actual = fmt.Sprintf("worked %s - %s",
						timeutil.FormatDisplay(d.ActualStartTime), timeutil.FormatDisplay(d.ActualEndTime))
				}
				fmt.Printf("  %s  %-10s overtime %-7s %s\n", d.Date, d.ShiftName, d.OvertimeHours, actual)
			}
			fmt.Println()

			return nil
		},
	}
}
