package csvsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

const masterCSV = `Contract,Name,Country,KOL Type,Contract End Date,Contract Value (USD)
K1,Alice,KR,Mega,2024-03-20,"$1,000"
,,,,,
K2,Bob,US,Micro,,500
`

const activitiesCSV = `Activity ID,Contract,Activity Type,Status,Planned Date,File Link
A1,K1,Video,Done,2024-02-15,
A2,K1,Post,In Progress,2024-02-20,http://files/a2
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	master := filepath.Join(dir, "master.csv")
	activities := filepath.Join(dir, "activities.csv")
	require.NoError(t, os.WriteFile(master, []byte(masterCSV), 0o600))
	require.NoError(t, os.WriteFile(activities, []byte(activitiesCSV), 0o600))
	return master, activities
}

func TestSource_Fetch(t *testing.T) {
	masterPath, activitiesPath := writeFixtures(t)

	raw, err := New(masterPath, activitiesPath, columns.DefaultMapping()).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Name, raw.Source)
	assert.False(t, raw.FetchedAt.IsZero())

	require.Len(t, raw.Master.Rows, 2)
	assert.Equal(t, "K1", raw.Master.Rows[0].Get(domain.FieldKolID))
	assert.Equal(t, "$1,000", raw.Master.Rows[0].Get(domain.FieldBudgetUSD))
	assert.Equal(t, 4, raw.Master.Rows[1].Line)
	assert.False(t, raw.Master.HasColumn(domain.FieldSpentUSD))

	require.Len(t, raw.Activities.Rows, 2)
	assert.Equal(t, "2024-02-20", raw.Activities.Rows[1].Get(domain.FieldDueDate))
	assert.Equal(t, "http://files/a2", raw.Activities.Rows[1].Get(domain.FieldFileLink))
}

func TestSource_FetchMissingFile(t *testing.T) {
	masterPath, _ := writeFixtures(t)

	_, err := New(masterPath, filepath.Join(t.TempDir(), "nope.csv"), columns.DefaultMapping()).Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_FetchCanceledContext(t *testing.T) {
	masterPath, activitiesPath := writeFixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(masterPath, activitiesPath, columns.DefaultMapping()).Fetch(ctx)

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadTable_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "arquivo vazio", content: ""},
		{name: "aspas inválidas", content: "kol_id,name\n\"K1,Alice\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(domain.TableMaster, strings.NewReader(tt.content), columns.DefaultMapping())
			assert.ErrorIs(t, err, domain.ErrSourceMalformed)
		})
	}
}
