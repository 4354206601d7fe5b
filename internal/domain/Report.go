package domain

// KPISummary são os indicadores gerais do painel
type KPISummary struct {
	TotalKols         int     `json:"total_kols"`
	TotalBudgetUSD    float64 `json:"total_budget_usd"`
	TotalSpentUSD     float64 `json:"total_spent_usd"`
	AverageCompletion float64 `json:"average_completion"`
	BudgetUtilization float64 `json:"budget_utilization"`
}

// CountItem é uma categoria com sua contagem
type CountItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountSeries é uma distribuição por categoria
type CountSeries struct {
	Items   []CountItem `json:"items"`
	AxisMax float64     `json:"axis_max"`
}

// MonthlyCount é a contagem de um bucket yyyy-mm
type MonthlyCount struct {
	YearMonth string `json:"year_month"`
	Count     int    `json:"count"`
}

// MonthlySeries é uma série temporal ordenada por mês
type MonthlySeries struct {
	Items   []MonthlyCount `json:"items"`
	AxisMax float64        `json:"axis_max"`
}

// CountryBudget é o orçamento total de um país
type CountryBudget struct {
	Country     string  `json:"country"`
	TotalBudget float64 `json:"total_budget"`
}

// BudgetSeries é o orçamento por país, do maior para o menor
type BudgetSeries struct {
	Items   []CountryBudget `json:"items"`
	AxisMax float64         `json:"axis_max"`
}

// RankedKol é uma posição no ranking de conclusão
type RankedKol struct {
	Position       int     `json:"position"`
	KolID          string  `json:"kol_id"`
	Name           string  `json:"name"`
	CompletionRate float64 `json:"completion_rate"`
}

// RankingSeries é o ranking dos KOLs por taxa de conclusão
type RankingSeries struct {
	Items   []RankedKol `json:"items"`
	AxisMax float64     `json:"axis_max"`
}

// Charts reúne todas as séries da visão geral
type Charts struct {
	StatusDistribution  CountSeries   `json:"status_distribution"`
	KolTypeDistribution CountSeries   `json:"kol_type_distribution"`
	MonthlySchedule     MonthlySeries `json:"monthly_schedule"`
	MonthlyCompleted    MonthlySeries `json:"monthly_completed"`
	BudgetByCountry     BudgetSeries  `json:"budget_by_country"`
	ActivityTypes       CountSeries   `json:"activity_types"`
	TopKols             RankingSeries `json:"top_kols"`
}

// KolRow é uma linha da tabela mestre com o destaque de contrato a expirar
type KolRow struct {
	KolRecord
	Highlight bool `json:"highlight"`
}

// ActivityRow é uma linha de atividade com o destaque de atraso
type ActivityRow struct {
	ActivityRecord
	Highlight bool `json:"highlight"`
}

// KolSummary são os indicadores individuais de um KOL
type KolSummary struct {
	TotalActivities int     `json:"total_activities"`
	DoneActivities  int     `json:"done_activities"`
	CompletionRate  float64 `json:"completion_rate"`
	BudgetUSD       float64 `json:"budget_usd"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// KolDetail é a visão detalhada de um KOL selecionado
type KolDetail struct {
	Kol           KolRecord     `json:"kol"`
	Summary       KolSummary    `json:"summary"`
	StatusSummary []CountItem   `json:"status_summary"`
	Activities    []ActivityRow `json:"activities"`
	HasActivities bool          `json:"has_activities"`
}

// Overview é a visão geral quando nenhum KOL está selecionado
type Overview struct {
	KPIs   KPISummary  `json:"kpis"`
	Alerts AlertReport `json:"alerts"`
}

// Dashboard é a resposta da página inicial
type Dashboard struct {
	Selection string     `json:"selection"`
	Overview  *Overview  `json:"overview,omitempty"`
	Detail    *KolDetail `json:"detail,omitempty"`
}

// RawData são as tabelas brutas filtradas pela seleção da sessão
type RawData struct {
	Selection  string        `json:"selection"`
	Kols       []KolRow      `json:"kols,omitempty"`
	Activities []ActivityRow `json:"activities,omitempty"`
}

// AvailablePeriods lista os buckets mensais (yyyy-mm) presentes nas atividades,
// com anos e meses separados para os filtros
type AvailablePeriods struct {
	Periods []string `json:"periods"`
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
