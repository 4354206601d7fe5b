package domain

import "time"

// DefaultAlertWindowDays é a janela padrão para contratos a expirar
const DefaultAlertWindowDays = 30

// ExpiringContract é um contrato que termina dentro da janela de alerta
type ExpiringContract struct {
	KolID         string    `json:"kol_id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	ContractEnd   time.Time `json:"contract_end"`
	DaysRemaining int       `json:"days_remaining"`
}

// OverdueActivity é uma atividade vencida e não concluída
type OverdueActivity struct {
	ActivityID   string    `json:"activity_id"`
	KolID        string    `json:"kol_id"`
	KolName      string    `json:"kol_name"`
	KolFound     bool      `json:"kol_found"` // false quando a atividade não tem KOL na tabela mestre
	ActivityType string    `json:"activity_type"`
	Status       string    `json:"status"`
	DueDate      time.Time `json:"due_date"`
	DaysOverdue  int       `json:"days_overdue"`
}

// AlertReport agrupa os dois conjuntos de alertas para um instante de referência
type AlertReport struct {
	ReferenceTime time.Time          `json:"reference_time"`
	WindowDays    int                `json:"window_days"`
	Expiring      []ExpiringContract `json:"expiring"`
	Overdue       []OverdueActivity  `json:"overdue"`
	ExpiringCount int                `json:"expiring_count"`
	OverdueCount  int                `json:"overdue_count"`
	AllClear      bool               `json:"all_clear"`
}
