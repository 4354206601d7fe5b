// Package workbook lê as tabelas de um arquivo xlsx com duas abas nomeadas
package workbook

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const Name = "workbook"

type Source struct {
	path            string
	masterSheet     string
	activitiesSheet string
	mapping         columns.Mapping
	now             func() time.Time
}

func New(path, masterSheet, activitiesSheet string, mapping columns.Mapping) *Source {
	return &Source{
		path:            path,
		masterSheet:     masterSheet,
		activitiesSheet: activitiesSheet,
		mapping:         mapping,
		now:             time.Now,
	}
}

func (s *Source) Name() string {
	return Name
}

func (s *Source) Fetch(ctx context.Context) (*domain.RawDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewUnavailableError(Name, "", err)
	}

	file, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, domain.NewUnavailableError(Name, "", errors.Wrapf(err, "opening %s", s.path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			logrus.WithError(err).Warn("source/workbook: error closing file")
		}
	}()

	master, err := s.readSheet(file, domain.TableMaster, s.masterSheet)
	if err != nil {
		return nil, err
	}

	activities, err := s.readSheet(file, domain.TableActivities, s.activitiesSheet)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":            s.path,
		"master_rows":     len(master.Rows),
		"activities_rows": len(activities.Rows),
	}).Debug("source/workbook: sheets fetched")

	return &domain.RawDataset{
		Source:     Name,
		Master:     master,
		Activities: activities,
		FetchedAt:  s.now(),
	}, nil
}

func (s *Source) readSheet(file *excelize.File, table, sheet string) (domain.RawTable, error) {
	if index, err := file.GetSheetIndex(sheet); err != nil || index < 0 {
		return domain.RawTable{}, domain.NewMalformedError(Name, "missing sheet "+sheet, err)
	}

	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.RawTable{}, domain.NewMalformedError(Name, "reading sheet "+sheet, err)
	}

	if len(rows) == 0 {
		return domain.RawTable{}, domain.NewMalformedError(Name, "empty sheet "+sheet, nil)
	}

	resolved := columns.ResolveTable(table, rows[0], rows[1:], s.mapping, 2)
	convertSerialDates(resolved)

	return resolved, nil
}

// convertSerialDates troca os números de série do Excel por datas em texto
func convertSerialDates(table domain.RawTable) {
	for _, row := range table.Rows {
		for _, field := range []string{domain.FieldContractEnd, domain.FieldDueDate} {
			value, ok := row.Cells[field]
			if !ok {
				continue
			}
			if converted, ok := SerialToDate(value); ok {
				row.Cells[field] = converted
			}
		}
	}
}

// SerialToDate converte um número de série do Excel (sistema 1900) em yyyy-mm-dd hh:mm:ss
func SerialToDate(value string) (string, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || serial <= 0 {
		return "", false
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}

	return date.Format(time.DateTime), true
}
