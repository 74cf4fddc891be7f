package cli

import (
	"github.com/spf13/cobra"

	"worklog/internal/config"
	"worklog/internal/services"
	"worklog/internal/settings"
)

// App wires the cobra command tree to the services.
type App struct {
	cmd      *cobra.Command
	services *services.ServiceContainer
	settings *settings.Manager
	config   *config.Config
	errors   *ErrorHandler
}

// NewApp creates the root command with all subcommands registered.
func NewApp(container *services.ServiceContainer, settingsMgr *settings.Manager, cfg *config.Config) *App {
	app := &App{
		services: container,
		settings: settingsMgr,
		config:   cfg,
		errors:   NewErrorHandler(),
	}

	app.cmd = &cobra.Command{
		Use:   "worklog",
		Short: "A personal time tracking application",
		Long: `Worklog is a personal time tracker: start and stop work sessions against
projects, record breaks during a session, and review aggregated analytics
(net time, overtime, efficiency, revenue) over any time window.

EXAMPLES:
  worklog project add "Website" --client "ACME" --rate 50
  worklog start <project-id> -d "landing page"    # Start a work session
  worklog break start coffee                      # Pause for a coffee break
  worklog break end                               # Resume working
  worklog status                                  # Show the live session
  worklog stop                                    # Stop and show the summary
  worklog report --range week                     # Weekly analytics
  worklog export --out backup.json                # Full JSON backup
  worklog import backup.json                      # Merge a backup back in

CONFIGURATION:
  Defaults < TOML config file (worklog/config.toml) < environment variables.

    WORKLOG_STORE_DIR          Store directory (default: ~/.worklog)
    WORKLOG_STORE_FILENAME     Store filename (default: worklog.db)
    WORKLOG_DAILY_LIMIT        Daily work limit for overtime (default: 8h)
    WORKLOG_RECENT_ENTRIES     Entries shown in status (default: 5)
    WORKLOG_DEBUG              Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.cmd.AddCommand(
		app.newStartCommand(),
		app.newStopCommand(),
		app.newStatusCommand(),
		app.newBreakCommand(),
		app.newProjectCommand(),
		app.newReportCommand(),
		app.newExportCommand(),
		app.newImportCommand(),
		app.newConfigCommand(),
	)

	return app
}

// Execute runs the command tree against the given arguments.
func (a *App) Execute(args []string) error {
	a.cmd.SetArgs(args)
	return a.cmd.Execute()
}
