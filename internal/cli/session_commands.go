package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"worklog/internal/backup"
	"worklog/internal/domain"
	"worklog/internal/i18n"
	"worklog/internal/timeutil"
)

func (a *App) newStartCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "start <project-id>",
		Short: "Start tracking time against a project",
		Long: `Start a new work session. If a session is already running it is stopped
first, including any break still open under it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.services.Session.Start(args[0], description)
			if err != nil {
				return a.errors.Handle("start tracking", err)
			}

			label := a.t("startTracking")
			fmt.Printf("%s: %s (entry %s)\n", label, entry.StartTime.Format(a.config.Display.TimeFormat), entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "description for the session")
	return cmd
}

func (a *App) newStopCommand() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running work session",
		Long: `Stop the running session and print its summary. An open break is closed
at stop time. With --out the session summary is also exported as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.services.Session.Stop()
			if err != nil {
				return a.errors.Handle("stop tracking", err)
			}

			a.printSessionSummary(summary.Entry, summary.Breaks)

			if exportPath != "" {
				project, _ := a.services.Projects.Get(summary.Entry.ProjectID)
				exporter := backup.NewExporter(a.services.Projects, a.services.Entries, a.services.Breaks)
				data, err := exporter.ExportSession(summary, project)
				if err != nil {
					return a.errors.Handle("export session", err)
				}
				if err := os.WriteFile(exportPath, data, 0644); err != nil {
					return a.errors.Handle("export session", err)
				}
				fmt.Printf("Session exported to %s\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "out", "", "write the session summary to a JSON file")
	return cmd
}

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the live tracking state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.services.Session.Current()
			if err != nil {
				return a.errors.Handle("read status", err)
			}

			if status.Entry == nil {
				fmt.Println(a.t("noEntriesYet"))
				return nil
			}

			projectName := status.Entry.ProjectID
			if project, err := a.services.Projects.Get(status.Entry.ProjectID); err == nil {
				projectName = fmt.Sprintf("%s (%s)", project.Name, project.Client)
			}

			fmt.Printf("%s: %s, %s\n", a.t("running"), projectName,
				timeutil.FormatDuration(status.ElapsedMillis))
			if status.Entry.Description != "" {
				fmt.Printf("  %s\n", status.Entry.Description)
			}
			if status.OpenBreak != nil {
				fmt.Printf("  on %s break for %s\n", status.OpenBreak.Type,
					timeutil.FormatDuration(status.BreakElapsedMillis))
			}
			return nil
		},
	}
}

func (a *App) newBreakCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Manage breaks during the running session",
	}

	var description string
	startCmd := &cobra.Command{
		Use:   "start <type>",
		Short: "Start a break (lunch|coffee|meeting|personal|other)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brk, err := a.services.Session.StartBreak(domain.BreakType(args[0]), description)
			if err != nil {
				return a.errors.Handle("start break", err)
			}
			fmt.Printf("Break started: %s (break %s)\n", brk.Type, brk.ID)
			return nil
		},
	}
	startCmd.Flags().StringVarP(&description, "description", "d", "", "description for the break")

	endCmd := &cobra.Command{
		Use:   "end",
		Short: "End the open break of the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.services.Session.Current()
			if err != nil {
				return a.errors.Handle("end break", err)
			}
			if status.Entry == nil || status.OpenBreak == nil {
				return a.errors.Handle("end break",
					fmt.Errorf("no open break"))
			}

			brk, err := a.services.Session.EndBreak(status.OpenBreak.ID)
			if err != nil {
				return a.errors.Handle("end break", err)
			}
			fmt.Printf("Break ended after %s\n", timeutil.FormatDuration(brk.Duration))
			return nil
		},
	}

	cmd.AddCommand(startCmd, endCmd)
	return cmd
}

// printSessionSummary prints the stop-time summary of a finished session.
func (a *App) printSessionSummary(entry *domain.TimeEntry, breaks []*domain.BreakEntry) {
	var breakMillis int64
	for _, b := range breaks {
		breakMillis += b.Duration
	}
	netMillis := entry.Duration - breakMillis
	if netMillis < 0 {
		netMillis = 0
	}

	fmt.Printf("%s: %s\n", a.t("totalWorkTime"), timeutil.FormatDuration(entry.Duration))
	fmt.Printf("%s: %s (%d)\n", a.t("breakTime"), timeutil.FormatDuration(breakMillis), len(breaks))
	fmt.Printf("%s: %s\n", a.t("netWorkTime"), timeutil.FormatDuration(netMillis))

	if project, err := a.services.Projects.Get(entry.ProjectID); err == nil && project.HourlyRate != nil {
		earnings := timeutil.Hours(netMillis) * *project.HourlyRate
		fmt.Printf("%s: %.2f/h, earned %.2f\n", a.t("hourlyRate"), *project.HourlyRate, earnings)
	}
}

// t translates a key for the configured language.
func (a *App) t(key string) string {
	return i18n.T(a.settings.Current().Language, key)
}

// joinTags formats a tag list for display.
func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
