package domain

import "time"

// DataQualityReport resume os valores convertidos para o padrão na última carga
type DataQualityReport struct {
	Source                string          `json:"source"`
	DerivedAt             time.Time       `json:"derived_at"`
	IssueCount            int             `json:"issue_count"`
	Issues                []CoercionIssue `json:"issues"`
	OrphanedActivities    int             `json:"orphaned_activities"`     // Atividades sem KOL na tabela mestre
	ActivitiesWithoutDate int             `json:"activities_without_date"` // Fora das agregações mensais
	KolsWithoutActivities int             `json:"kols_without_activities"`
}
