package domain

import (
	"strings"
	"time"
)

// Tabelas da fonte de dados
const (
	TableMaster     = "master"
	TableActivities = "activities"
)

// Campos canônicos das duas tabelas
const (
	FieldKolID        = "kol_id"
	FieldName         = "name"
	FieldCountry      = "country"
	FieldKolType      = "kol_type"
	FieldContractEnd  = "contract_end"
	FieldBudgetUSD    = "budget_usd"
	FieldSpentUSD     = "spent_usd"
	FieldActivityID   = "activity_id"
	FieldActivityType = "activity_type"
	FieldStatus       = "status"
	FieldDueDate      = "due_date"
	FieldFileLink     = "file_link"
)

// RawRow é uma linha da fonte com as células indexadas pelo campo canônico
type RawRow struct {
	Line  int
	Cells map[string]string
}

// Get retorna o valor da célula sem espaços nas bordas
func (r RawRow) Get(field string) string {
	return strings.TrimSpace(r.Cells[field])
}

// RawTable é uma tabela da fonte já com os cabeçalhos resolvidos
type RawTable struct {
	Name    string
	Columns []string // Campos canônicos presentes na fonte
	Rows    []RawRow
}

// HasColumn indica se o campo canônico existe na tabela
func (t RawTable) HasColumn(field string) bool {
	for _, column := range t.Columns {
		if column == field {
			return true
		}
	}
	return false
}

// RawDataset é o contrato de saída dos adaptadores de fonte de dados
type RawDataset struct {
	Source     string
	Master     RawTable
	Activities RawTable
	FetchedAt  time.Time
}
