package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

// BuildKolDetail monta a visão de um KOL: registro, indicadores, resumo de status e atividades
func BuildKolDetail(dataset *domain.Dataset, kol domain.KolRecord, today time.Time) domain.KolDetail {
	activities := dataset.ActivitiesOf(kol.KolID)

	done := 0
	statuses := make([]string, 0, len(activities))
	for _, activity := range activities {
		if activity.IsDone() {
			done++
		}
		statuses = append(statuses, activity.Status)
	}

	return domain.KolDetail{
		Kol: kol,
		Summary: domain.KolSummary{
			TotalActivities: len(activities),
			DoneActivities:  done,
			CompletionRate:  utils.Percentage(float64(done), float64(len(activities))),
			BudgetUSD:       kol.BudgetUSD,
			UtilizationRate: kol.UtilizationRate,
		},
		StatusSummary: CountValues(statuses),
		Activities:    alerting.HighlightActivities(activities, today),
		HasActivities: len(activities) > 0,
	}
}

// BuildRawData filtra as tabelas pela seleção da sessão. Com um KOL
// selecionado, a tabela mestre mantém todas as linhas com o nome e as
// atividades são as do primeiro KOL encontrado.
func BuildRawData(dataset *domain.Dataset, session domain.Session, today time.Time, windowDays int) (domain.RawData, error) {
	if session.AllSelected() {
		return domain.RawData{
			Selection:  domain.SelectionAll,
			Kols:       alerting.HighlightKols(dataset.Kols, today, windowDays),
			Activities: alerting.HighlightActivities(dataset.Activities, today),
		}, nil
	}

	kol, ok := dataset.KolByName(session.SelectedKol)
	if !ok {
		return domain.RawData{}, domain.ErrKolNotFound
	}

	kols := make([]domain.KolRecord, 0, 1)
	for _, record := range dataset.Kols {
		if record.Name == session.SelectedKol {
			kols = append(kols, record)
		}
	}

	return domain.RawData{
		Selection:  session.SelectedKol,
		Kols:       alerting.HighlightKols(kols, today, windowDays),
		Activities: alerting.HighlightActivities(dataset.ActivitiesOf(kol.KolID), today),
	}, nil
}

// KolOptions são as opções de seleção: "All" seguido dos nomes da tabela mestre
func KolOptions(dataset *domain.Dataset) []string {
	return append([]string{domain.SelectionAll}, dataset.KolNames()...)
}

// BuildPeriods lista os buckets mensais, anos e meses presentes nas atividades
func BuildPeriods(dataset *domain.Dataset) domain.AvailablePeriods {
	periods := make(map[string]struct{})
	years := make(map[string]struct{})
	months := make(map[string]struct{})

	for _, activity := range dataset.Activities {
		if !activity.HasBucket() {
			continue
		}
		periods[activity.YearMonth] = struct{}{}
		years[activity.YearMonth[:4]] = struct{}{}
		months[activity.YearMonth[5:]] = struct{}{}
	}

	return domain.AvailablePeriods{
		Periods: sortedKeys(periods),
		Years:   sortedKeys(years),
		Months:  sortedKeys(months),
	}
}

// BuildDataQuality resume os problemas de conversão e de junção do dataset
func BuildDataQuality(dataset *domain.Dataset) domain.DataQualityReport {
	known := make(map[string]struct{}, len(dataset.Kols))
	for _, kol := range dataset.Kols {
		known[kol.KolID] = struct{}{}
	}

	withActivities := make(map[string]struct{})
	report := domain.DataQualityReport{
		Source:     dataset.Source,
		DerivedAt:  dataset.DerivedAt,
		IssueCount: len(dataset.Issues),
		Issues:     dataset.Issues,
	}

	for _, activity := range dataset.Activities {
		if _, ok := known[activity.KolID]; !ok {
			report.OrphanedActivities++
		} else {
			withActivities[activity.KolID] = struct{}{}
		}
		if activity.DueDate == nil {
			report.ActivitiesWithoutDate++
		}
	}

	for _, kol := range dataset.Kols {
		if _, ok := withActivities[kol.KolID]; !ok {
			report.KolsWithoutActivities++
		}
	}

	if report.Issues == nil {
		report.Issues = []domain.CoercionIssue{}
	}

	return report
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
