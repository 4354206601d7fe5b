package sheets

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/sheets/mocks"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSource_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockValuesReader(ctrl)

	reader.EXPECT().ReadSheet(gomock.Any(), "sheet-id", "KOL_Master").Return([][]interface{}{
		{"Kol_ID", "Name", "Country", "KOL_Type", "Contract_End", "Budget (USD)", "Spent (USD)"},
		{"K1", "Alice", "KR", "Mega", "2024-03-20", float64(1000), float64(1200.5)},
		{},
		{"K2", "Bob", nil, "Micro", "", float64(0)},
	}, nil)
	reader.EXPECT().ReadSheet(gomock.Any(), "sheet-id", "Activities").Return([][]interface{}{
		{"Activity_ID", "Kol_ID", "Activity_Type", "Status", "Due_Date", "File_Link"},
		{"A1", "K1", "Video", "Done", "2024-02-15", true},
	}, nil)

	source := NewWithReader(reader, "sheet-id", "KOL_Master", "Activities", columns.DefaultMapping())
	raw, err := source.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Name, raw.Source)
	require.Len(t, raw.Master.Rows, 2)
	assert.Equal(t, "1000", raw.Master.Rows[0].Get(domain.FieldBudgetUSD))
	assert.Equal(t, "1200.5", raw.Master.Rows[0].Get(domain.FieldSpentUSD))
	assert.Equal(t, 4, raw.Master.Rows[1].Line)
	assert.Equal(t, "", raw.Master.Rows[1].Get(domain.FieldCountry))
	assert.Equal(t, "", raw.Master.Rows[1].Get(domain.FieldSpentUSD))

	require.Len(t, raw.Activities.Rows, 1)
	assert.Equal(t, "true", raw.Activities.Rows[0].Get(domain.FieldFileLink))
}

func TestSource_FetchErrors(t *testing.T) {
	t.Run("sem spreadsheet id", func(t *testing.T) {
		_, err := New("", "creds.json", "KOL_Master", "Activities", columns.DefaultMapping()).Fetch(context.Background())
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("credenciais ausentes", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "google_credentials.json")
		_, err := New("sheet-id", missing, "KOL_Master", "Activities", columns.DefaultMapping()).Fetch(context.Background())
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("erro da API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := mocks.NewMockValuesReader(ctrl)
		apiErr := errors.New("403 forbidden")
		reader.EXPECT().ReadSheet(gomock.Any(), "sheet-id", "KOL_Master").Return(nil, apiErr)

		_, err := NewWithReader(reader, "sheet-id", "KOL_Master", "Activities", columns.DefaultMapping()).Fetch(context.Background())
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("aba vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := mocks.NewMockValuesReader(ctrl)
		reader.EXPECT().ReadSheet(gomock.Any(), "sheet-id", "KOL_Master").Return([][]interface{}{}, nil)

		_, err := NewWithReader(reader, "sheet-id", "KOL_Master", "Activities", columns.DefaultMapping()).Fetch(context.Background())
		assert.ErrorIs(t, err, domain.ErrSourceMalformed)
	})
}
