package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/backup"
	"worklog/internal/services"
	"worklog/internal/timeutil"
)

// parseWindow resolves the --range / --from / --to flags into a window.
func parseWindow(rangeName, from, to string) (services.Window, error) {
	if from != "" || to != "" {
		w := services.Window{Kind: services.WindowCustom}
		var err error
		if from != "" {
			if w.Start, err = time.ParseInLocation("2006-01-02", from, time.Local); err != nil {
				return w, fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", from)
			}
		}
		if to != "" {
			if w.End, err = time.ParseInLocation("2006-01-02", to, time.Local); err != nil {
				return w, fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", to)
			}
			w.End = w.End.AddDate(0, 0, 1).Add(-time.Millisecond)
		}
		return w, nil
	}

	switch rangeName {
	case "today", "":
		return services.Window{Kind: services.WindowToday}, nil
	case "week":
		return services.Window{Kind: services.WindowWeek}, nil
	case "month":
		return services.Window{Kind: services.WindowMonth}, nil
	case "quarter":
		return services.Window{Kind: services.WindowQuarter}, nil
	case "year":
		return services.Window{Kind: services.WindowYear}, nil
	default:
		return services.Window{}, fmt.Errorf("invalid range %q, expected today|week|month|quarter|year", rangeName)
	}
}

func (a *App) newReportCommand() *cobra.Command {
	var (
		rangeName  string
		from, to   string
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show analytics for a time window",
		Long: `Show aggregated analytics (total, break, and net time, efficiency,
overtime, revenue) plus a per-project breakdown. The week starts on Monday
and the month on the 1st. With --out the report is exported as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := parseWindow(rangeName, from, to)
			if err != nil {
				return err
			}

			report, err := a.services.Reporting.Report(window)
			if err != nil {
				return a.errors.Handle("build report", err)
			}

			a.printReport(report)

			if exportPath != "" {
				exporter := backup.NewExporter(a.services.Projects, a.services.Entries, a.services.Breaks)
				data, err := exporter.ExportReport(report)
				if err != nil {
					return a.errors.Handle("export report", err)
				}
				if err := os.WriteFile(exportPath, data, 0644); err != nil {
					return a.errors.Handle("export report", err)
				}
				fmt.Printf("Report exported to %s\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rangeName, "range", "r", "today", "window: today|week|month|quarter|year")
	cmd.Flags().StringVar(&from, "from", "", "custom window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom window end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exportPath, "out", "", "write the report to a JSON file")
	return cmd
}

func (a *App) printReport(report *services.Report) {
	s := report.Summary
	fmt.Printf("%s: %s (%d entries)\n", a.t("totalWorkTime"), timeutil.FormatDuration(s.TotalTime), s.EntriesCount)
	fmt.Printf("%s: %s\n", a.t("breakTime"), timeutil.FormatDuration(s.TotalBreakTime))
	fmt.Printf("%s: %s\n", a.t("netWorkTime"), timeutil.FormatDuration(s.NetWorkTime))
	fmt.Printf("%s: %.1f%%\n", a.t("efficiency"), s.WorkEfficiency)
	fmt.Printf("%s: %s\n", a.t("overtime"), timeutil.FormatDuration(report.OvertimeMillis))
	fmt.Printf("Ø daily hours: %.1f\n", report.AverageDailyHours)
	if report.TotalRevenue > 0 {
		fmt.Printf("Revenue: %.2f\n", report.TotalRevenue)
	}

	if len(report.Projects) > 0 {
		fmt.Println()
		for _, st := range report.Projects {
			name := st.ProjectID + " (unknown project)"
			if st.Project != nil {
				name = fmt.Sprintf("%s (%s)", st.Project.Name, st.Project.Client)
			}
			fmt.Printf("  %s  total %s  net %s  %d entries  revenue %.2f\n",
				name, timeutil.FormatDuration(st.TotalTime),
				timeutil.FormatDuration(st.NetTime), st.Entries, st.Revenue)
		}
	}
}
