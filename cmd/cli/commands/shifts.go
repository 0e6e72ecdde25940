package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextshift/shiftboard/pkg/core/catalog"
)

// ShiftsCmd creates the shifts command
func ShiftsCmd(app *AppContext) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "shifts",
		Short: "List shift templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := catalog.ListAll
			if activeOnly {
				list = catalog.ListActive
			}

			templates, err := list(app.Ctx, app.Store)
			if err != nil {
				return err
			}

			if len(templates) == 0 {
				fmt.Println("No shift templates defined")
				return nil
			}

			fmt.Println()
			for _, t := range templates {
				state := "active"
				if !t.IsActive {
					state = "retired"
				}
				times := ""
				if t.StartTime != "" {
					times = fmt.Sprintf("%s - %s", t.StartTime, t.EndTime)
				}
				fmt.Printf("  %-10s %-15s %-8s %s\n", t.Name, times, state, t.ID)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only show templates available for assignment")

	return cmd
}

// AddShiftCmd creates the addShift command
func AddShiftCmd(app *AppContext) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "addShift <name> <bg_color> <text_color>",
		Short: "Create a new shift template",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := catalog.Create(app.Ctx, app.Store, app.Logger, catalog.CreateInput{
				Name:      args[0],
				BgColor:   args[1],
				TextColor: args[2],
				StartTime: start,
				EndTime:   end,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Shift template created: %s\n", template.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Nominal start time (HH:MM), required for timed shifts")
	cmd.Flags().StringVar(&end, "end", "", "Nominal end time (HH:MM), required for timed shifts")

	return cmd
}

// ToggleShiftCmd creates the toggleShift command
func ToggleShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleShift <id>",
		Short: "Flip a shift template between active and retired",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.ToggleActive(app.Ctx, app.Store, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Println("Shift template toggled")
			return nil
		},
	}
}
