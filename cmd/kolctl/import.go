package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/csvsource"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/deriving"
)

var (
	importMaster     string
	importActivities string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the master and activities CSV files into postgres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mapping, err := columns.LoadMapping(cfg.DataSource.ColumnMappingFile)
		if err != nil {
			return err
		}

		raw, err := csvsource.New(importMaster, importActivities, mapping).Fetch(ctx)
		if err != nil {
			return err
		}

		dataset, err := deriving.NewPipeline(cfg.App.Location).Derive(raw)
		if err != nil {
			return err
		}

		kols := dedupeKols(dataset.Kols)
		activities := dedupeActivities(dataset.Activities)

		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer conn.Close()

		repo := repository.NewKolRepository(conn)
		if err := repo.SaveOrUpdateKols(ctx, kols); err != nil {
			return fmt.Errorf("saving kols: %w", err)
		}
		if err := repo.SaveOrUpdateActivities(ctx, activities); err != nil {
			return fmt.Errorf("saving activities: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"kols":       len(kols),
			"activities": len(activities),
			"issues":     len(dataset.Issues),
		}).Info("import: tables saved")

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d KOLs and %d activities (%d value(s) defaulted).\n",
			len(kols), len(activities), len(dataset.Issues))
		return nil
	},
}

// dedupeKols mantém a última linha de cada kol_id, na posição da primeira
// ocorrência; o upsert não aceita a mesma chave duas vezes no mesmo comando
func dedupeKols(kols []domain.KolRecord) []domain.KolRecord {
	index := make(map[string]int, len(kols))
	result := make([]domain.KolRecord, 0, len(kols))
	for _, kol := range kols {
		if i, ok := index[kol.KolID]; ok {
			result[i] = kol
			continue
		}
		index[kol.KolID] = len(result)
		result = append(result, kol)
	}
	return result
}

func dedupeActivities(activities []domain.ActivityRecord) []domain.ActivityRecord {
	index := make(map[string]int, len(activities))
	result := make([]domain.ActivityRecord, 0, len(activities))
	for _, activity := range activities {
		if i, ok := index[activity.ActivityID]; ok {
			result[i] = activity
			continue
		}
		index[activity.ActivityID] = len(result)
		result = append(result, activity)
	}
	return result
}

func init() {
	importCmd.Flags().StringVar(&importMaster, "master", "", "Path to the KOL master CSV")
	importCmd.Flags().StringVar(&importActivities, "activities", "", "Path to the activities CSV")
	_ = importCmd.MarkFlagRequired("master")
	_ = importCmd.MarkFlagRequired("activities")
}
