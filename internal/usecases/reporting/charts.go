package reporting

import (
	"sort"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

// Limites padrão dos eixos quando a série está vazia ou zerada
const (
	defaultAxisMax    = 10.0
	percentageAxisMax = 100.0
	axisHeadroom      = 1.1
)

// AxisMax devolve o limite do eixo: 10% acima do maior valor, 10 sem dados,
// e sempre 100 para porcentagens
func AxisMax(values []float64, isPercentage bool) float64 {
	if isPercentage {
		return percentageAxisMax
	}

	highest := 0.0
	for _, v := range values {
		if v > highest {
			highest = v
		}
	}

	if highest <= 0 {
		return defaultAxisMax
	}
	return highest * axisHeadroom
}

// ComputeKPIs calcula os indicadores gerais. A utilização geral é
// total gasto / total orçado, sem limite em 100.
func ComputeKPIs(dataset *domain.Dataset) domain.KPISummary {
	summary := domain.KPISummary{TotalKols: len(dataset.Kols)}

	completionSum := 0.0
	for _, kol := range dataset.Kols {
		summary.TotalBudgetUSD += kol.BudgetUSD
		summary.TotalSpentUSD += kol.SpentUSD
		completionSum += kol.CompletionRate
	}

	if summary.TotalKols > 0 {
		summary.AverageCompletion = completionSum / float64(summary.TotalKols)
	}
	summary.BudgetUtilization = utils.Percentage(summary.TotalSpentUSD, summary.TotalBudgetUSD)

	return summary
}

// BuildCharts monta todas as séries da visão geral
func BuildCharts(dataset *domain.Dataset, topLimit int) domain.Charts {
	statuses := make([]string, 0, len(dataset.Activities))
	activityTypes := make([]string, 0, len(dataset.Activities))
	for _, activity := range dataset.Activities {
		statuses = append(statuses, activity.Status)
		activityTypes = append(activityTypes, activity.ActivityType)
	}

	kolTypes := make([]string, 0, len(dataset.Kols))
	for _, kol := range dataset.Kols {
		kolTypes = append(kolTypes, kol.KolType)
	}

	return domain.Charts{
		StatusDistribution:  countSeries(statuses),
		KolTypeDistribution: countSeries(kolTypes),
		MonthlySchedule:     monthlySeries(dataset.Activities, false),
		MonthlyCompleted:    monthlySeries(dataset.Activities, true),
		BudgetByCountry:     budgetByCountry(dataset.Kols),
		ActivityTypes:       countSeries(activityTypes),
		TopKols:             TopKols(dataset.Kols, topLimit),
	}
}

// CountValues conta as ocorrências de cada rótulo não vazio, da maior para a
// menor contagem; empates mantêm a ordem da primeira ocorrência
func CountValues(labels []string) []domain.CountItem {
	index := make(map[string]int)
	items := make([]domain.CountItem, 0)

	for _, label := range labels {
		if label == "" {
			continue
		}
		if i, ok := index[label]; ok {
			items[i].Count++
			continue
		}
		index[label] = len(items)
		items = append(items, domain.CountItem{Label: label, Count: 1})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	return items
}

func countSeries(labels []string) domain.CountSeries {
	items := CountValues(labels)

	values := make([]float64, 0, len(items))
	for _, item := range items {
		values = append(values, float64(item.Count))
	}

	return domain.CountSeries{Items: items, AxisMax: AxisMax(values, false)}
}

// monthlySeries agrupa por bucket yyyy-mm em ordem crescente; atividades sem
// data ficam de fora
func monthlySeries(activities []domain.ActivityRecord, onlyDone bool) domain.MonthlySeries {
	counts := make(map[string]int)
	for _, activity := range activities {
		if !activity.HasBucket() {
			continue
		}
		if onlyDone && !activity.IsDone() {
			continue
		}
		counts[activity.YearMonth]++
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	items := make([]domain.MonthlyCount, 0, len(months))
	values := make([]float64, 0, len(months))
	for _, month := range months {
		items = append(items, domain.MonthlyCount{YearMonth: month, Count: counts[month]})
		values = append(values, float64(counts[month]))
	}

	return domain.MonthlySeries{Items: items, AxisMax: AxisMax(values, false)}
}

func budgetByCountry(kols []domain.KolRecord) domain.BudgetSeries {
	index := make(map[string]int)
	items := make([]domain.CountryBudget, 0)

	for _, kol := range kols {
		if kol.Country == "" {
			continue
		}
		if i, ok := index[kol.Country]; ok {
			items[i].TotalBudget += kol.BudgetUSD
			continue
		}
		index[kol.Country] = len(items)
		items = append(items, domain.CountryBudget{Country: kol.Country, TotalBudget: kol.BudgetUSD})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalBudget > items[j].TotalBudget
	})

	values := make([]float64, 0, len(items))
	for _, item := range items {
		values = append(values, item.TotalBudget)
	}

	return domain.BudgetSeries{Items: items, AxisMax: AxisMax(values, false)}
}

// TopKols ordena por taxa de conclusão decrescente e mantém os limit primeiros
func TopKols(kols []domain.KolRecord, limit int) domain.RankingSeries {
	sorted := make([]domain.KolRecord, len(kols))
	copy(sorted, kols)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletionRate > sorted[j].CompletionRate
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	items := make([]domain.RankedKol, 0, len(sorted))
	for i, kol := range sorted {
		items = append(items, domain.RankedKol{
			Position:       i + 1,
			KolID:          kol.KolID,
			Name:           kol.Name,
			CompletionRate: kol.CompletionRate,
		})
	}

	return domain.RankingSeries{Items: items, AxisMax: AxisMax(nil, true)}
}
