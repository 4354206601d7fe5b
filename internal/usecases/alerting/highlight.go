package alerting

import (
	"time"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

// Os predicados de destaque das tabelas comparam apenas o dia civil, ignorando o
// horário. Isso difere do cálculo dos alertas, que usa o instante exato: um
// contrato que termina hoje às 00:00 é destacado na tabela, mas já não aparece
// na lista de contratos a expirar quando now é hoje às 10:00. As duas regras
// não devem ser unificadas.

// IsContractImminent indica se o contrato termina entre hoje e hoje + janela (em dias)
func IsContractImminent(kol domain.KolRecord, today time.Time, windowDays int) bool {
	if kol.ContractEnd == nil {
		return false
	}

	end := utils.DateOnly(*kol.ContractEnd)
	start := utils.DateOnly(today)
	limit := utils.DateOnly(today.AddDate(0, 0, windowDays))

	return !end.Before(start) && !end.After(limit)
}

// IsActivityOverdue indica se a atividade venceu antes de hoje e não está concluída
func IsActivityOverdue(activity domain.ActivityRecord, today time.Time) bool {
	if activity.DueDate == nil {
		return false
	}

	return utils.DateOnly(*activity.DueDate).Before(utils.DateOnly(today)) && !activity.IsDone()
}

// HighlightKols aplica IsContractImminent a cada linha da tabela mestre
func HighlightKols(kols []domain.KolRecord, today time.Time, windowDays int) []domain.KolRow {
	rows := make([]domain.KolRow, 0, len(kols))
	for _, kol := range kols {
		rows = append(rows, domain.KolRow{
			KolRecord: kol,
			Highlight: IsContractImminent(kol, today, windowDays),
		})
	}
	return rows
}

// HighlightActivities aplica IsActivityOverdue a cada atividade
func HighlightActivities(activities []domain.ActivityRecord, today time.Time) []domain.ActivityRow {
	rows := make([]domain.ActivityRow, 0, len(activities))
	for _, activity := range activities {
		rows = append(rows, domain.ActivityRow{
			ActivityRecord: activity,
			Highlight:      IsActivityOverdue(activity, today),
		})
	}
	return rows
}
