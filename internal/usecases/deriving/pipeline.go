package deriving

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

// Pipeline implementa Deriver. É uma função pura das tabelas brutas.
type Pipeline struct {
	location *time.Location
}

// NewPipeline cria o pipeline; as datas sem fuso são lidas na localização informada
func NewPipeline(location *time.Location) *Pipeline {
	if location == nil {
		location = time.Local
	}
	return &Pipeline{location: location}
}

// Derive executa as etapas de conversão, agregação e junção
func (p *Pipeline) Derive(raw *domain.RawDataset) (*domain.Dataset, error) {
	if raw == nil {
		return nil, domain.NewUnavailableError("pipeline", "no raw tables", nil)
	}

	if err := checkColumns(raw.Source, raw.Master, RequiredMasterColumns); err != nil {
		return nil, err
	}
	if err := checkColumns(raw.Source, raw.Activities, RequiredActivityColumns); err != nil {
		return nil, err
	}

	issues := make([]domain.CoercionIssue, 0)

	kols, kolIssues := p.parseKols(raw.Master)
	issues = append(issues, kolIssues...)

	activities, activityIssues := p.parseActivities(raw.Activities)
	issues = append(issues, activityIssues...)

	completion := CompletionRates(activities)
	for i := range kols {
		// KOLs sem atividades ficam fora da agregação e recebem 0
		kols[i].CompletionRate = completion[kols[i].KolID]
		kols[i].UtilizationRate = UtilizationRate(kols[i].SpentUSD, kols[i].BudgetUSD)
	}

	logrus.WithFields(logrus.Fields{
		"source":     raw.Source,
		"kols":       len(kols),
		"activities": len(activities),
		"issues":     len(issues),
	}).Debug("pipeline: dataset derived")

	return &domain.Dataset{
		Kols:       kols,
		Activities: activities,
		Issues:     issues,
		Source:     raw.Source,
		DerivedAt:  raw.FetchedAt,
	}, nil
}

func (p *Pipeline) parseKols(table domain.RawTable) ([]domain.KolRecord, []domain.CoercionIssue) {
	kols := make([]domain.KolRecord, 0, len(table.Rows))
	issues := make([]domain.CoercionIssue, 0)

	for _, row := range table.Rows {
		kol := domain.KolRecord{
			KolID:   row.Get(domain.FieldKolID),
			Name:    row.Get(domain.FieldName),
			Country: row.Get(domain.FieldCountry),
			KolType: row.Get(domain.FieldKolType),
		}

		recorder := issueRecorder{table: domain.TableMaster, line: row.Line, recordID: kol.KolID}

		kol.ContractEnd = p.coerceDate(row, domain.FieldContractEnd, &recorder)
		kol.BudgetUSD = coerceAmount(row, domain.FieldBudgetUSD, &recorder)
		// spent_usd é opcional na fonte; ausente vira 0
		kol.SpentUSD = coerceAmount(row, domain.FieldSpentUSD, &recorder)

		kols = append(kols, kol)
		issues = append(issues, recorder.issues...)
	}

	return kols, issues
}

func (p *Pipeline) parseActivities(table domain.RawTable) ([]domain.ActivityRecord, []domain.CoercionIssue) {
	activities := make([]domain.ActivityRecord, 0, len(table.Rows))
	issues := make([]domain.CoercionIssue, 0)

	for _, row := range table.Rows {
		activity := domain.ActivityRecord{
			ActivityID:   row.Get(domain.FieldActivityID),
			KolID:        row.Get(domain.FieldKolID),
			ActivityType: row.Get(domain.FieldActivityType),
			// Status é comparado exatamente, sem normalizar maiúsculas
			Status:   row.Cells[domain.FieldStatus],
			FileLink: row.Get(domain.FieldFileLink),
		}

		recorder := issueRecorder{table: domain.TableActivities, line: row.Line, recordID: activity.ActivityID}
		activity.DueDate = p.coerceDate(row, domain.FieldDueDate, &recorder)

		if activity.IsDone() {
			activity.Done = 1
		}

		if activity.DueDate != nil {
			activity.YearMonth = utils.YearMonth(*activity.DueDate)
		}

		activities = append(activities, activity)
		issues = append(issues, recorder.issues...)
	}

	return activities, issues
}

func (p *Pipeline) coerceDate(row domain.RawRow, field string, recorder *issueRecorder) *time.Time {
	value := row.Get(field)
	date, err := utils.ParseFlexibleDate(value, p.location)
	if err != nil {
		recorder.add(field, value, "unparseable date")
		return nil
	}
	return date
}

func coerceAmount(row domain.RawRow, field string, recorder *issueRecorder) float64 {
	value := row.Get(field)
	amount, ok, err := utils.ParseAmount(value)
	if err != nil {
		recorder.add(field, value, "unparseable number")
		return 0
	}
	if ok && amount < 0 {
		recorder.add(field, value, "negative amount")
		return 0
	}
	return amount
}

// CompletionRates agrupa as atividades por kol_id e calcula done/total*100.
// Atividades sem kol_id não entram em nenhum grupo.
func CompletionRates(activities []domain.ActivityRecord) map[string]float64 {
	totals := make(map[string]int)
	done := make(map[string]int)

	for _, activity := range activities {
		if activity.KolID == "" {
			continue
		}
		totals[activity.KolID]++
		done[activity.KolID] += activity.Done
	}

	rates := make(map[string]float64, len(totals))
	for kolID, total := range totals {
		rates[kolID] = utils.Clamp(utils.Percentage(float64(done[kolID]), float64(total)), 0, 100)
	}

	return rates
}

// UtilizationRate calcula spent/budget*100 limitado a [0, 100]; 0 quando budget é 0
func UtilizationRate(spent, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return utils.Clamp(spent/budget*100, 0, 100)
}

func checkColumns(source string, table domain.RawTable, required []string) error {
	missing := make([]string, 0)
	for _, field := range required {
		if !table.HasColumn(field) {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return domain.NewMalformedError(source,
			fmt.Sprintf("table %s is missing required columns: %s", table.Name, strings.Join(missing, ", ")), nil)
	}

	return nil
}

type issueRecorder struct {
	table    string
	line     int
	recordID string
	issues   []domain.CoercionIssue
}

func (r *issueRecorder) add(field, value, reason string) {
	r.issues = append(r.issues, domain.CoercionIssue{
		Table:    r.table,
		Line:     r.line,
		RecordID: r.recordID,
		Field:    field,
		Value:    value,
		Reason:   reason,
	})
}
