package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/core/overtime"
)

// PendingRequestsCmd creates the pendingRequests command
func PendingRequestsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pendingRequests",
		Short: "List REST/OFF requests awaiting a decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, err := engine.PendingRequests(app.Ctx, app.Store)
			if err != nil {
				return err
			}

			if len(pending) == 0 {
				fmt.Println("No pending requests")
				return nil
			}

			fmt.Printf("\n%d pending request(s)\n\n", len(pending))
			for _, req := range pending {
				fmt.Printf("  %s  %-22s %-6s %s\n", req.Date, req.EmployeeName, req.ShiftType, req.ID)
			}
			fmt.Println()

			return nil
		},
	}
}

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <assignment_id>",
		Short: "Approve a pending REST/OFF request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.Approve(app.Ctx, app.Store, app.Logger, app.Notifier, args[0]); err != nil {
				return err
			}

			fmt.Println("Request approved")
			return nil
		},
	}
}

// RejectCmd creates the reject command
func RejectCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <assignment_id>",
		Short: "Reject a pending REST/OFF request, removing it from the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.Reject(app.Ctx, app.Store, app.Logger, app.Notifier, args[0]); err != nil {
				return err
			}

			fmt.Println("Request rejected and removed")
			return nil
		},
	}
}

// RecordTimesCmd creates the recordTimes command
func RecordTimesCmd(app *AppContext) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "recordTimes <assignment_id>",
		Short: "Record worked clock-in/clock-out times and recompute overtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" && end == "" {
				return fmt.Errorf("at least one of --start or --end is required")
			}

			if err := overtime.RecordActualTimes(app.Ctx, app.Store, app.Logger, args[0], start, end); err != nil {
				return err
			}

			assignment, err := app.Store.GetAssignment(app.Ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Recorded. Overtime for this assignment: %s\n", assignment.OvertimeHours)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Actual start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Actual end time (HH:MM)")

	return cmd
}
