// Command kolctl reúne as operações de terminal do dashboard de KOLs:
// relatórios, alertas, migrações e carga das planilhas no postgres.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source"
	"github.com/vfg2006/kol-dashboard-api/internal/config"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/kol-dashboard-api/pkg/log"
)

var version = "dev"

var (
	verbose    bool
	jsonOutput bool
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "kolctl",
	Short:         "KOL dashboard operator CLI",
	Long:          "kolctl prints dashboard reports and alerts and manages the postgres data source.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := cfg.App.LogLevel
		if !verbose {
			level = logrus.WarnLevel.String()
		}
		log.Setup(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured LOG_LEVEL instead of warnings only")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print report and alerts as JSON instead of tables")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
}

// loadDataset lê a fonte configurada e deriva o dataset, como a API faz na primeira leitura
func loadDataset(ctx context.Context) (*domain.Dataset, error) {
	var conn postgres.Conn
	if cfg.DataSource.Kind == config.SourcePostgres {
		pgConn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pgConn.Close()
		conn = pgConn
	}

	src, err := source.New(cfg, conn)
	if err != nil {
		return nil, err
	}

	provider := loading.NewService(src, deriving.NewPipeline(cfg.App.Location), cfg.Cache.TTL)
	return provider.Dataset(ctx)
}
