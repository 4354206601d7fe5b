// Package source reúne os adaptadores que buscam as tabelas brutas
package source

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/csvsource"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/pgsource"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/sheets"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/workbook"
	"github.com/vfg2006/kol-dashboard-api/internal/config"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

// Source busca as tabelas mestre e de atividades.
// Erros devolvidos são sempre *domain.DataLoadError.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*domain.RawDataset, error)
}

// New cria o adaptador configurado em DATA_SOURCE. conn só é usado pela fonte postgres.
func New(cfg *config.Config, conn postgres.Conn) (Source, error) {
	mapping, err := columns.LoadMapping(cfg.DataSource.ColumnMappingFile)
	if err != nil {
		return nil, err
	}

	var src Source
	switch cfg.DataSource.Kind {
	case config.SourceCSV:
		src = csvsource.New(cfg.CSV.MasterPath, cfg.CSV.ActivitiesPath, mapping)
	case config.SourceWorkbook:
		src = workbook.New(cfg.Workbook.Path, cfg.DataSource.MasterSheet, cfg.DataSource.ActivitiesSheet, mapping)
	case config.SourceSheets:
		src = sheets.New(
			cfg.Sheets.SpreadsheetID,
			cfg.Sheets.CredentialsFile,
			cfg.DataSource.MasterSheet,
			cfg.DataSource.ActivitiesSheet,
			mapping,
		)
	case config.SourcePostgres:
		if conn == nil {
			return nil, fmt.Errorf("source: postgres source requires a database connection")
		}
		src = pgsource.New(repository.NewKolRepository(conn))
	default:
		return nil, fmt.Errorf("source: unknown data source %q", cfg.DataSource.Kind)
	}

	logrus.WithField("source", src.Name()).Info("source: data source configured")

	return src, nil
}
