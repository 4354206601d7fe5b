package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

var today = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestBuildKolDetail(t *testing.T) {
	dataset := testDataset()
	kol, _ := dataset.KolByID("K1")

	detail := BuildKolDetail(dataset, kol, today)

	assert.Equal(t, "Alice", detail.Kol.Name)
	assert.True(t, detail.HasActivities)
	assert.Equal(t, domain.KolSummary{
		TotalActivities: 2,
		DoneActivities:  1,
		CompletionRate:  50,
		BudgetUSD:       1000,
		UtilizationRate: 50,
	}, detail.Summary)
	require.Len(t, detail.Activities, 2)
	assert.False(t, detail.Activities[0].Highlight)
	assert.True(t, detail.Activities[1].Highlight)
	assert.Len(t, detail.StatusSummary, 2)
}

func TestBuildKolDetail_WithoutActivities(t *testing.T) {
	dataset := testDataset()
	dataset.Activities = nil
	kol, _ := dataset.KolByID("K2")

	detail := BuildKolDetail(dataset, kol, today)

	assert.False(t, detail.HasActivities)
	assert.Equal(t, 0.0, detail.Summary.CompletionRate)
	assert.Empty(t, detail.Activities)
}

func TestBuildRawData_All(t *testing.T) {
	raw, err := BuildRawData(testDataset(), domain.Session{}, today, 30)

	require.NoError(t, err)
	assert.Equal(t, domain.SelectionAll, raw.Selection)
	require.Len(t, raw.Kols, 3)
	assert.True(t, raw.Kols[0].Highlight)
	assert.False(t, raw.Kols[1].Highlight)
	assert.False(t, raw.Kols[2].Highlight)
	assert.Len(t, raw.Activities, 5)
}

func TestBuildRawData_Selected(t *testing.T) {
	dataset := testDataset()
	dataset.Kols = append(dataset.Kols, domain.KolRecord{KolID: "K4", Name: "Alice"})

	raw, err := BuildRawData(dataset, domain.Session{SelectedKol: "Alice"}, today, 30)

	require.NoError(t, err)
	assert.Equal(t, "Alice", raw.Selection)
	assert.Len(t, raw.Kols, 2)
	require.Len(t, raw.Activities, 2)
	for _, row := range raw.Activities {
		assert.Equal(t, "K1", row.KolID)
	}
}

func TestBuildRawData_UnknownSelection(t *testing.T) {
	_, err := BuildRawData(testDataset(), domain.Session{SelectedKol: "Nobody"}, today, 30)

	assert.ErrorIs(t, err, domain.ErrKolNotFound)
}

func TestKolOptions(t *testing.T) {
	assert.Equal(t, []string{"All", "Alice", "Bob", "Carol"}, KolOptions(testDataset()))
}

func TestBuildPeriods(t *testing.T) {
	periods := BuildPeriods(testDataset())

	assert.Equal(t, []string{"2024-01", "2024-02"}, periods.Periods)
	assert.Equal(t, []string{"2024"}, periods.Years)
	assert.Equal(t, []string{"01", "02"}, periods.Months)
}

func TestBuildDataQuality(t *testing.T) {
	dataset := testDataset()
	dataset.Issues = []domain.CoercionIssue{
		{Table: domain.TableMaster, Line: 4, RecordID: "K3", Field: domain.FieldContractEnd, Value: "soon", Reason: "invalid date"},
	}

	report := BuildDataQuality(dataset)

	assert.Equal(t, "csv", report.Source)
	assert.Equal(t, 1, report.IssueCount)
	assert.Equal(t, 1, report.OrphanedActivities)
	assert.Equal(t, 1, report.ActivitiesWithoutDate)
	assert.Equal(t, 0, report.KolsWithoutActivities)
}

func TestBuildDataQuality_NoIssues(t *testing.T) {
	report := BuildDataQuality(&domain.Dataset{Kols: []domain.KolRecord{{KolID: "K1"}}})

	assert.NotNil(t, report.Issues)
	assert.Equal(t, 1, report.KolsWithoutActivities)
}
