package deriving

import "github.com/vfg2006/kol-dashboard-api/internal/domain"

// Deriver transforma as tabelas brutas no dataset enriquecido
type Deriver interface {
	// Derive devolve o dataset enriquecido ou um *domain.DataLoadError
	Derive(raw *domain.RawDataset) (*domain.Dataset, error)
}

// RequiredMasterColumns são os campos obrigatórios da tabela mestre
var RequiredMasterColumns = []string{
	domain.FieldKolID,
	domain.FieldName,
	domain.FieldContractEnd,
	domain.FieldBudgetUSD,
}

// RequiredActivityColumns são os campos obrigatórios da tabela de atividades
var RequiredActivityColumns = []string{
	domain.FieldActivityID,
	domain.FieldKolID,
	domain.FieldStatus,
	domain.FieldDueDate,
}
