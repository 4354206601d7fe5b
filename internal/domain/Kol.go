// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// StatusDone é o único status de atividade com semântica especial
const StatusDone = "Done"

// KolRecord representa uma linha da tabela mestre (um KOL / contrato)
type KolRecord struct {
	KolID           string     `json:"kol_id"`
	Name            string     `json:"name"`
	Country         string     `json:"country"`
	KolType         string     `json:"kol_type"`
	ContractEnd     *time.Time `json:"contract_end"`
	BudgetUSD       float64    `json:"budget_usd"`
	SpentUSD        float64    `json:"spent_usd"`
	CompletionRate  float64    `json:"completion_rate"`  // 0-100, derivado das atividades
	UtilizationRate float64    `json:"utilization_rate"` // 0-100, spent/budget limitado a 100
}

// ActivityRecord representa uma atividade vinculada a um KOL
type ActivityRecord struct {
	ActivityID   string     `json:"activity_id"`
	KolID        string     `json:"kol_id"`
	ActivityType string     `json:"activity_type"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date"`
	FileLink     string     `json:"file_link,omitempty"`
	Done         int        `json:"done"`                 // 1 quando Status == "Done"
	YearMonth    string     `json:"year_month,omitempty"` // Formato yyyy-mm, vazio sem due_date
}

// IsDone indica se a atividade foi concluída
func (a ActivityRecord) IsDone() bool {
	return a.Status == StatusDone
}

// HasBucket indica se a atividade participa das agregações mensais
func (a ActivityRecord) HasBucket() bool {
	return a.YearMonth != ""
}
