package columns

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

// ResolveTable converte o cabeçalho e as linhas da fonte em uma domain.RawTable.
// Cabeçalhos desconhecidos são ignorados; linhas totalmente vazias são descartadas.
// firstLine é o número da primeira linha de dados na fonte.
func ResolveTable(table string, header []string, records [][]string, mapping Mapping, firstLine int) domain.RawTable {
	lookup := mapping.ForTable(table)

	positions := make(map[string]int)
	columns := make([]string, 0, len(header))
	for i, name := range header {
		field, ok := lookup[normalizeHeader(name)]
		if !ok {
			if strings.TrimSpace(name) != "" {
				logrus.WithFields(logrus.Fields{
					"table":  table,
					"header": name,
				}).Debug("columns: ignoring unknown header")
			}
			continue
		}

		// O primeiro cabeçalho que resolve para o campo vence
		if _, exists := positions[field]; exists {
			continue
		}
		positions[field] = i
		columns = append(columns, field)
	}

	rows := make([]domain.RawRow, 0, len(records))
	for i, record := range records {
		if isBlank(record) {
			continue
		}

		cells := make(map[string]string, len(positions))
		for field, position := range positions {
			if position < len(record) {
				cells[field] = record[position]
			}
		}

		rows = append(rows, domain.RawRow{Line: firstLine + i, Cells: cells})
	}

	return domain.RawTable{
		Name:    table,
		Columns: columns,
		Rows:    rows,
	}
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
