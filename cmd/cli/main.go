package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/cmd/cli/commands"
	"github.com/nextshift/shiftboard/internal/config"
	"github.com/nextshift/shiftboard/pkg/clients/mailclient"
	"github.com/nextshift/shiftboard/pkg/postgres"
	"github.com/nextshift/shiftboard/pkg/utils/logging"
)

var (
	env   string
	app   *commands.AppContext
	store *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftboard",
		Short: "Shiftboard CLI - Manage the schedule board",
		Long:  `A CLI tool for assigning shifts, handling REST/OFF requests and tracking overtime.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if store != nil {
				store.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(
		commands.AssignCmd(appRef()),
		commands.UpdateAssignmentCmd(appRef()),
		commands.DeleteAssignmentCmd(appRef()),
		commands.RecordTimesCmd(appRef()),
		commands.PendingRequestsCmd(appRef()),
		commands.ApproveCmd(appRef()),
		commands.RejectCmd(appRef()),
		commands.BoardCmd(appRef()),
		commands.ExportBoardCmd(appRef()),
		commands.ScheduleCmd(appRef()),
		commands.ShiftsCmd(appRef()),
		commands.AddShiftCmd(appRef()),
		commands.ToggleShiftCmd(appRef()),
		commands.EmployeesCmd(appRef()),
		commands.AddEmployeeCmd(appRef()),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext. Commands capture the pointer at
// registration time; initApp fills it in before any command runs.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, database and the optional mail client
func initApp() error {
	appRef()
	app.Ctx = context.Background()

	var err error
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	store, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Store = store
	app.Logger.Debug("Database initialized successfully")

	if app.Cfg.GmailUserID != "" {
		oauthCfg, err := config.LoadOAuthClientWithEnv(env)
		if err != nil {
			return fmt.Errorf("failed to load OAuth client config: %w", err)
		}

		mail, err := mailclient.NewClient(app.Ctx, oauthCfg, env, app.Cfg.GmailUserID, app.Cfg.GmailSender)
		if err != nil {
			return fmt.Errorf("failed to create mail client: %w", err)
		}
		app.Notifier = mail
		app.Logger.Debug("Mail client initialized successfully")
	}

	return nil
}
