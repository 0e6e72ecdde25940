package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
)

// EmployeesCmd creates the employees command
func EmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List employees with their overtime totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Store.GetEmployees(app.Ctx)
			if err != nil {
				return err
			}

			if len(employees) == 0 {
				fmt.Println("No employees")
				return nil
			}

			fmt.Println()
			for _, e := range employees {
				fmt.Printf("  %-22s %-12s overtime %-7s %s\n", e.FullName(), e.Team, e.TotalOvertime, e.ID)
			}
			fmt.Println()

			return nil
		},
	}
}

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	var team, email string

	cmd := &cobra.Command{
		Use:   "addEmployee <first_name> <last_name>",
		Short: "Add a new employee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee := &db.Employee{
				ID:            uuid.New().String(),
				FirstName:     args[0],
				LastName:      args[1],
				Team:          team,
				Email:         email,
				TotalOvertime: db.ZeroOvertime,
			}

			if err := app.Store.InsertEmployee(app.Ctx, employee); err != nil {
				return err
			}

			app.Logger.Info("Employee added",
				zap.String("employee_id", employee.ID),
				zap.String("name", employee.FullName()))

			fmt.Printf("Employee added: %s\n", employee.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team the employee belongs to")
	cmd.Flags().StringVar(&email, "email", "", "Address for approval notifications")

	return cmd
}
