package workbook

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "KOL_Master"))
	require.NoError(t, f.SetSheetRow("KOL_Master", "A1", &[]interface{}{"Kol_ID", "Name", "Country", "KOL_Type", "Contract_End", "Budget (USD)", "Spent (USD)"}))
	require.NoError(t, f.SetSheetRow("KOL_Master", "A2", &[]interface{}{"K1", "Alice", "KR", "Mega", 45371, 1000, 1200}))
	require.NoError(t, f.SetSheetRow("KOL_Master", "A4", &[]interface{}{"K2", "Bob", "US", "Micro", "2024-04-15", 0, 10}))

	_, err := f.NewSheet("Activities")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Activities", "A1", &[]interface{}{"Activity_ID", "Kol_ID", "Activity_Type", "Status", "Due_Date"}))
	require.NoError(t, f.SetSheetRow("Activities", "A2", &[]interface{}{"A1", "K1", "Video", "In Progress", 45337}))

	path := filepath.Join(t.TempDir(), "kol.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSource_Fetch(t *testing.T) {
	path := writeWorkbook(t)

	raw, err := New(path, "KOL_Master", "Activities", columns.DefaultMapping()).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Name, raw.Source)
	require.Len(t, raw.Master.Rows, 2)
	assert.Equal(t, "2024-03-20 00:00:00", raw.Master.Rows[0].Get(domain.FieldContractEnd))
	assert.Equal(t, "1200", raw.Master.Rows[0].Get(domain.FieldSpentUSD))
	assert.Equal(t, 4, raw.Master.Rows[1].Line)
	assert.Equal(t, "2024-04-15", raw.Master.Rows[1].Get(domain.FieldContractEnd))

	require.Len(t, raw.Activities.Rows, 1)
	assert.Equal(t, "2024-02-15 00:00:00", raw.Activities.Rows[0].Get(domain.FieldDueDate))
}

func TestSource_FetchErrors(t *testing.T) {
	path := writeWorkbook(t)

	t.Run("arquivo inexistente", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.xlsx"), "KOL_Master", "Activities", columns.DefaultMapping()).
			Fetch(context.Background())
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("aba inexistente", func(t *testing.T) {
		_, err := New(path, "KOL_Master", "Atividades", columns.DefaultMapping()).Fetch(context.Background())
		assert.ErrorIs(t, err, domain.ErrSourceMalformed)
	})
}

func TestSerialToDate(t *testing.T) {
	tests := []struct {
		value    string
		expected string
		ok       bool
	}{
		{value: "45371", expected: "2024-03-20 00:00:00", ok: true},
		{value: "45371.5", expected: "2024-03-20 12:00:00", ok: true},
		{value: "2024-03-20", ok: false},
		{value: "", ok: false},
		{value: "-1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			converted, ok := SerialToDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, converted)
		})
	}
}
