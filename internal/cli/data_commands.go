package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"worklog/internal/backup"
	"worklog/internal/i18n"
)

func (a *App) newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter := backup.NewExporter(a.services.Projects, a.services.Entries, a.services.Breaks)
			data, err := exporter.ExportAll()
			if err != nil {
				return a.errors.Handle("export data", err)
			}

			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return a.errors.Handle("export data", err)
			}
			fmt.Printf("Backup written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (defaults to stdout)")
	return cmd
}

func (a *App) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON backup, merging by id",
		Long: `Import projects, time entries, and breaks from a backup file. Records are
merged by id; existing records always win and nothing is deleted. Invalid
records are skipped and counted, the rest still merge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return a.errors.Handle("read import file", err)
			}

			importer := backup.NewImporter(a.services.Projects, a.services.Entries, a.services.Breaks)
			summary, err := importer.Import(data)
			if err != nil {
				return a.errors.Handle("import data", err)
			}

			fmt.Printf("Imported %d projects, %d entries, %d breaks\n",
				summary.ProjectsAdded, summary.EntriesAdded, summary.BreaksAdded)
			if summary.DuplicatesSkipped > 0 {
				fmt.Printf("Skipped %d records already present\n", summary.DuplicatesSkipped)
			}
			if summary.InvalidRecords > 0 {
				fmt.Printf("Skipped %d invalid records\n", summary.InvalidRecords)
			}
			return nil
		},
	}
}

func (a *App) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := a.settings.Current()
			theme := "light"
			if current.DarkMode {
				theme = "dark"
			}
			fmt.Printf("language: %s\ntheme: %s\ndaily limit: %s\nstore: %s\n",
				current.Language, theme, a.config.Tracking.DailyWorkLimit, a.config.GetStorePath())
			return nil
		},
	}

	langCmd := &cobra.Command{
		Use:   "language <en|de|el>",
		Short: "Set the interface language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.settings.SetLanguage(i18n.Language(args[0])); err != nil {
				return a.errors.Handle("set language", err)
			}
			fmt.Printf("Language set to %s\n", args[0])
			return nil
		},
	}

	themeCmd := &cobra.Command{
		Use:   "theme <light|dark>",
		Short: "Set the display theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "dark":
				if err := a.settings.SetDarkMode(true); err != nil {
					return a.errors.Handle("set theme", err)
				}
			case "light":
				if err := a.settings.SetDarkMode(false); err != nil {
					return a.errors.Handle("set theme", err)
				}
			default:
				return fmt.Errorf("invalid theme %q, expected light or dark", args[0])
			}
			fmt.Printf("Theme set to %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(showCmd, langCmd, themeCmd)
	return cmd
}
