// Package csvsource lê as tabelas mestre e de atividades de dois arquivos CSV
package csvsource

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

const Name = "csv"

type Source struct {
	masterPath     string
	activitiesPath string
	mapping        columns.Mapping
	now            func() time.Time
}

func New(masterPath, activitiesPath string, mapping columns.Mapping) *Source {
	return &Source{
		masterPath:     masterPath,
		activitiesPath: activitiesPath,
		mapping:        mapping,
		now:            time.Now,
	}
}

func (s *Source) Name() string {
	return Name
}

// Fetch lê os dois arquivos. Arquivo ausente é fonte indisponível,
// arquivo sem cabeçalho ou CSV inválido é fonte malformada.
func (s *Source) Fetch(ctx context.Context) (*domain.RawDataset, error) {
	master, err := s.readTable(ctx, domain.TableMaster, s.masterPath)
	if err != nil {
		return nil, err
	}

	activities, err := s.readTable(ctx, domain.TableActivities, s.activitiesPath)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"master_rows":     len(master.Rows),
		"activities_rows": len(activities.Rows),
	}).Debug("source/csv: tables fetched")

	return &domain.RawDataset{
		Source:     Name,
		Master:     master,
		Activities: activities,
		FetchedAt:  s.now(),
	}, nil
}

func (s *Source) readTable(ctx context.Context, table, path string) (domain.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawTable{}, domain.NewUnavailableError(Name, table, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, domain.NewUnavailableError(Name, table, errors.Wrapf(err, "opening %s", path))
	}
	defer file.Close()

	return ReadTable(table, file, s.mapping)
}

// ReadTable interpreta um CSV com cabeçalho na primeira linha
func ReadTable(table string, reader io.Reader, mapping columns.Mapping) (domain.RawTable, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return domain.RawTable{}, domain.NewMalformedError(Name, table+": empty file", nil)
	}
	if err != nil {
		return domain.RawTable{}, domain.NewMalformedError(Name, table, errors.Wrap(err, "reading header"))
	}

	records, err := csvReader.ReadAll()
	if err != nil {
		return domain.RawTable{}, domain.NewMalformedError(Name, table, errors.Wrap(err, "reading records"))
	}

	// A linha 1 é o cabeçalho
	return columns.ResolveTable(table, header, records, mapping, 2), nil
}
