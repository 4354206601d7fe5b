package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

var topLimit int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print KPIs and the top KOLs by completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		limit := topLimit
		if limit <= 0 {
			limit = cfg.Dashboard.TopKolsLimit
		}

		kpis := reporting.ComputeKPIs(dataset)
		ranking := reporting.TopKols(dataset.Kols, limit)

		out := cmd.OutOrStdout()
		if jsonOutput {
			fmt.Fprintln(out, utils.PrettyJson(map[string]any{
				"source":   dataset.Source,
				"kpis":     kpis,
				"top_kols": ranking,
			}))
			return nil
		}

		fmt.Fprintf(out, "Source: %s (derived %s)\n\n", dataset.Source, dataset.DerivedAt.Format("2006-01-02 15:04:05"))
		renderKPIs(out, kpis)

		fmt.Fprintf(out, "\nTop %d KOLs by completion\n", limit)
		renderTopKols(out, ranking)

		if len(dataset.Issues) > 0 {
			fmt.Fprintf(out, "\n%d value(s) could not be parsed and were defaulted\n", len(dataset.Issues))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&topLimit, "top", 0, "Number of KOLs in the ranking (default TOP_KOLS_LIMIT)")
}
