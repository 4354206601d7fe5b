package reporting

import (
	"context"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

// Reporter define as visões somente leitura sobre o dataset em cache
type Reporter interface {
	// KPIs obtém os indicadores gerais
	KPIs(ctx context.Context) (domain.KPISummary, error)

	// Charts obtém as séries dos gráficos da visão geral
	Charts(ctx context.Context) (domain.Charts, error)

	// Alerts avalia contratos a vencer e atividades atrasadas no instante atual
	Alerts(ctx context.Context) (domain.AlertReport, error)

	// Dashboard monta a página inicial conforme a seleção da sessão
	Dashboard(ctx context.Context, session domain.Session) (domain.Dashboard, error)

	// RawData retorna as tabelas com destaque, filtradas pela seleção da sessão
	RawData(ctx context.Context, session domain.Session) (domain.RawData, error)

	// KolOptions lista as opções de seleção ("All" + nomes)
	KolOptions(ctx context.Context) ([]string, error)

	// KolDetail obtém o detalhe de um KOL pelo identificador
	KolDetail(ctx context.Context, kolID string) (domain.KolDetail, error)

	// Periods lista os períodos mensais disponíveis nas atividades
	Periods(ctx context.Context) (domain.AvailablePeriods, error)

	// DataQuality resume os problemas de conversão do dataset atual
	DataQuality(ctx context.Context) (domain.DataQualityReport, error)

	// ValidateSelection confere se o nome é uma opção de seleção válida
	ValidateSelection(ctx context.Context, name string) error
}
