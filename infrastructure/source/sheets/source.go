// Package sheets lê as tabelas de uma planilha do Google Sheets via API
package sheets

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

const Name = "sheets"

// ValuesReader lê todas as células de uma aba
type ValuesReader interface {
	ReadSheet(ctx context.Context, spreadsheetID, sheet string) ([][]interface{}, error)
}

type Source struct {
	spreadsheetID   string
	credentialsFile string
	masterSheet     string
	activitiesSheet string
	mapping         columns.Mapping
	now             func() time.Time

	mu     sync.Mutex
	reader ValuesReader
}

func New(spreadsheetID, credentialsFile, masterSheet, activitiesSheet string, mapping columns.Mapping) *Source {
	return &Source{
		spreadsheetID:   spreadsheetID,
		credentialsFile: credentialsFile,
		masterSheet:     masterSheet,
		activitiesSheet: activitiesSheet,
		mapping:         mapping,
		now:             time.Now,
	}
}

// NewWithReader usa um leitor já configurado
func NewWithReader(reader ValuesReader, spreadsheetID, masterSheet, activitiesSheet string, mapping columns.Mapping) *Source {
	source := New(spreadsheetID, "", masterSheet, activitiesSheet, mapping)
	source.reader = reader
	return source
}

func (s *Source) Name() string {
	return Name
}

func (s *Source) Fetch(ctx context.Context) (*domain.RawDataset, error) {
	if s.spreadsheetID == "" {
		return nil, domain.NewUnavailableError(Name, "spreadsheet id not configured", nil)
	}

	reader, err := s.valuesReader()
	if err != nil {
		return nil, err
	}

	master, err := s.readSheet(ctx, reader, domain.TableMaster, s.masterSheet)
	if err != nil {
		return nil, err
	}

	activities, err := s.readSheet(ctx, reader, domain.TableActivities, s.activitiesSheet)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id":  s.spreadsheetID,
		"master_rows":     len(master.Rows),
		"activities_rows": len(activities.Rows),
	}).Debug("source/sheets: sheets fetched")

	return &domain.RawDataset{
		Source:     Name,
		Master:     master,
		Activities: activities,
		FetchedAt:  s.now(),
	}, nil
}

// valuesReader cria o cliente da API na primeira carga
func (s *Source) valuesReader() (ValuesReader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reader != nil {
		return s.reader, nil
	}

	if _, err := os.Stat(s.credentialsFile); err != nil {
		return nil, domain.NewUnavailableError(Name, "credentials file "+s.credentialsFile, err)
	}

	reader, err := newGoogleReader(context.Background(), s.credentialsFile)
	if err != nil {
		return nil, domain.NewUnavailableError(Name, "creating sheets client", err)
	}

	s.reader = reader
	return reader, nil
}

func (s *Source) readSheet(ctx context.Context, reader ValuesReader, table, sheet string) (domain.RawTable, error) {
	values, err := reader.ReadSheet(ctx, s.spreadsheetID, sheet)
	if err != nil {
		return domain.RawTable{}, domain.NewUnavailableError(Name, table, errors.Wrapf(err, "reading sheet %s", sheet))
	}

	if len(values) == 0 {
		return domain.RawTable{}, domain.NewMalformedError(Name, "empty sheet "+sheet, nil)
	}

	records := make([][]string, 0, len(values))
	for _, row := range values {
		records = append(records, toStrings(row))
	}

	return columns.ResolveTable(table, records[0], records[1:], s.mapping, 2), nil
}

func toStrings(row []interface{}) []string {
	cells := make([]string, len(row))
	for i, value := range row {
		cells[i] = cellString(value)
	}
	return cells
}

// cellString converte o valor não formatado da API em texto
func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
