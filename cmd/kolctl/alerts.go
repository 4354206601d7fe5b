package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

var (
	alertsNow    string
	alertsWindow int
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Print expiring contracts and overdue activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := referenceTime(alertsNow, cfg.App.Location)
		if err != nil {
			return err
		}

		window := alertsWindow
		if window <= 0 {
			window = cfg.Dashboard.AlertWindowDays
		}

		dataset, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		report := alerting.NewEvaluator(window).Evaluate(dataset, now)

		out := cmd.OutOrStdout()
		if jsonOutput {
			fmt.Fprintln(out, utils.PrettyJson(report))
			return nil
		}

		fmt.Fprintf(out, "Alerts at %s (window %d days)\n", now.Format(time.RFC3339), window)

		if report.AllClear {
			fmt.Fprintln(out, "All clear: no expiring contracts and no overdue activities.")
			return nil
		}

		fmt.Fprintf(out, "\nContracts expiring within %d days: %d\n", window, report.ExpiringCount)
		renderExpiring(out, report.Expiring)

		fmt.Fprintf(out, "\nOverdue activities: %d\n", report.OverdueCount)
		renderOverdue(out, report.Overdue)
		return nil
	},
}

// referenceTime interpreta --now no fuso configurado; vazio significa agora
func referenceTime(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.Local
	}

	parsed, err := utils.ParseFlexibleDate(value, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", value, err)
	}
	if parsed == nil {
		return time.Now().In(location), nil
	}
	return *parsed, nil
}

func init() {
	alertsCmd.Flags().StringVar(&alertsNow, "now", "", "Reference time, e.g. 2024-03-01 or 2024-03-01 10:00:00 (default current time)")
	alertsCmd.Flags().IntVar(&alertsWindow, "window", 0, "Expiring-contract window in days (default ALERT_WINDOW_DAYS)")
}
