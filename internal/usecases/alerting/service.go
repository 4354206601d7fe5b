// Package alerting avalia os alertas de contratos a expirar e atividades atrasadas
package alerting

import (
	"time"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

// Evaluator calcula os alertas a partir do dataset já validado
type Evaluator struct {
	windowDays int
}

// NewEvaluator cria um avaliador com a janela de contratos em dias
func NewEvaluator(windowDays int) *Evaluator {
	if windowDays <= 0 {
		windowDays = domain.DefaultAlertWindowDays
	}
	return &Evaluator{windowDays: windowDays}
}

// WindowDays retorna a janela configurada
func (e *Evaluator) WindowDays() int {
	return e.windowDays
}

// Evaluate monta o relatório completo de alertas para o instante now
func (e *Evaluator) Evaluate(dataset *domain.Dataset, now time.Time) domain.AlertReport {
	expiring := e.ExpiringContracts(dataset.Kols, now)
	overdue := OverdueActivities(dataset.Activities, dataset.Kols, now)

	return domain.AlertReport{
		ReferenceTime: now,
		WindowDays:    e.windowDays,
		Expiring:      expiring,
		Overdue:       overdue,
		ExpiringCount: len(expiring),
		OverdueCount:  len(overdue),
		AllClear:      len(expiring) == 0 && len(overdue) == 0,
	}
}

// ExpiringContracts retorna os KOLs com now <= contract_end <= now + janela,
// comparando instantes exatos
func (e *Evaluator) ExpiringContracts(kols []domain.KolRecord, now time.Time) []domain.ExpiringContract {
	limit := now.AddDate(0, 0, e.windowDays)
	result := make([]domain.ExpiringContract, 0)

	for _, kol := range kols {
		if kol.ContractEnd == nil {
			continue
		}

		end := *kol.ContractEnd
		if end.Before(now) || end.After(limit) {
			continue
		}

		result = append(result, domain.ExpiringContract{
			KolID:         kol.KolID,
			Name:          kol.Name,
			Country:       kol.Country,
			ContractEnd:   end,
			DaysRemaining: utils.DaysBetween(now, end),
		})
	}

	return result
}

// OverdueActivities retorna as atividades com due_date < now e status diferente de Done,
// com o nome do KOL obtido pela junção por kol_id
func OverdueActivities(activities []domain.ActivityRecord, kols []domain.KolRecord, now time.Time) []domain.OverdueActivity {
	names := make(map[string]string, len(kols))
	for _, kol := range kols {
		if _, exists := names[kol.KolID]; !exists {
			names[kol.KolID] = kol.Name
		}
	}

	result := make([]domain.OverdueActivity, 0)
	for _, activity := range activities {
		if activity.DueDate == nil || activity.IsDone() {
			continue
		}

		due := *activity.DueDate
		if !due.Before(now) {
			continue
		}

		name, found := names[activity.KolID]
		result = append(result, domain.OverdueActivity{
			ActivityID:   activity.ActivityID,
			KolID:        activity.KolID,
			KolName:      name,
			KolFound:     found,
			ActivityType: activity.ActivityType,
			Status:       activity.Status,
			DueDate:      due,
			DaysOverdue:  utils.DaysBetween(due, now),
		})
	}

	return result
}
