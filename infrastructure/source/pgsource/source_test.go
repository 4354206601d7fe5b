package pgsource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSource_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKolRepository(ctrl)

	repo.EXPECT().GetMasterTable(gomock.Any()).Return(
		[]string{"kol_id", "name", "contract_end", "budget_usd", "spent_usd"},
		[][]string{{"K1", "Alice", "2024-03-20", "1000.00", "1200.00"}},
		nil,
	)
	repo.EXPECT().GetActivitiesTable(gomock.Any()).Return(
		[]string{"activity_id", "kol_id", "status", "due_date"},
		[][]string{{"A1", "K1", "Done", ""}},
		nil,
	)

	raw, err := New(repo).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Name, raw.Source)
	require.Len(t, raw.Master.Rows, 1)
	assert.Equal(t, "1200.00", raw.Master.Rows[0].Get(domain.FieldSpentUSD))
	require.Len(t, raw.Activities.Rows, 1)
	assert.Equal(t, "", raw.Activities.Rows[0].Get(domain.FieldDueDate))
}

func TestSource_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKolRepository(ctrl)

	dbErr := errors.New("connection refused")
	repo.EXPECT().GetMasterTable(gomock.Any()).Return(nil, nil, dbErr)

	_, err := New(repo).Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, dbErr)
}
