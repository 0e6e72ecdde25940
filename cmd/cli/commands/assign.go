package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/core/engine"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	var details, start, end string

	cmd := &cobra.Command{
		Use:   "assign <employee_id> <shift_id> <date>",
		Short: "Assign a shift to an employee for a date, replacing any existing assignment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("assign command",
				zap.String("employee_id", args[0]),
				zap.String("shift_id", args[1]),
				zap.String("date", args[2]))

			assignment, err := engine.Assign(app.Ctx, app.Store, app.Logger, engine.AssignInput{
				EmployeeID:    args[0],
				ShiftID:       args[1],
				Date:          args[2],
				StartTime:     start,
				EndTime:       end,
				CustomDetails: details,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nShift assigned\n\n")
			fmt.Printf("Assignment ID: %s\n", assignment.ID)
			fmt.Printf("Date:          %s\n", assignment.Date)
			fmt.Printf("Type:          %s\n", assignment.ShiftType)
			fmt.Printf("Status:        %s\n\n", assignment.ApprovalStatus)

			return nil
		},
	}

	cmd.Flags().StringVar(&details, "details", "", "Free-form note attached to the assignment")
	cmd.Flags().StringVar(&start, "start", "", "Override the template's start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Override the template's end time (HH:MM)")

	return cmd
}

// UpdateAssignmentCmd creates the updateAssignment command
func UpdateAssignmentCmd(app *AppContext) *cobra.Command {
	var details string

	cmd := &cobra.Command{
		Use:   "updateAssignment <id> <employee_id> <shift_id> <date>",
		Short: "Re-point an assignment at a different employee, shift or date",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := engine.Update(app.Ctx, app.Store, app.Logger, engine.UpdateInput{
				ID:            args[0],
				EmployeeID:    args[1],
				ShiftID:       args[2],
				Date:          args[3],
				CustomDetails: details,
			})
			if err != nil {
				return err
			}

			fmt.Println("Assignment updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&details, "details", "", "Free-form note attached to the assignment")

	return cmd
}

// DeleteAssignmentCmd creates the deleteAssignment command
func DeleteAssignmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteAssignment <id>",
		Short: "Remove an assignment from the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := engine.Delete(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("no assignment with id %s", args[0])
			}

			fmt.Println("Assignment deleted")
			return nil
		},
	}
}
