package loading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/mocks"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/kol-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type panicDeriver struct{}

func (panicDeriver) Derive(*domain.RawDataset) (*domain.Dataset, error) {
	panic("index out of range")
}

func rawDataset() *domain.RawDataset {
	return &domain.RawDataset{
		Source: "csv",
		Master: domain.RawTable{
			Name:    domain.TableMaster,
			Columns: []string{"kol_id", "name", "contract_end", "budget_usd"},
			Rows: []domain.RawRow{
				{Line: 2, Cells: map[string]string{"kol_id": "K1", "name": "Alice", "contract_end": "2024-03-20", "budget_usd": "1000"}},
			},
		},
		Activities: domain.RawTable{
			Name:    domain.TableActivities,
			Columns: []string{"activity_id", "kol_id", "status", "due_date"},
			Rows: []domain.RawRow{
				{Line: 2, Cells: map[string]string{"activity_id": "A1", "kol_id": "K1", "status": "Done", "due_date": "2024-02-15"}},
			},
		},
	}
}

func newService(t *testing.T, clock *fakeClock) (*Service, *mocks.MockSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("csv").AnyTimes()

	service := NewService(src, deriving.NewPipeline(time.UTC), time.Minute,
		WithClock(clock.Now),
		WithMetrics(metrics.New()),
	)
	return service, src
}

func TestService_DatasetIsCachedWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	service, src := newService(t, clock)

	src.EXPECT().Fetch(gomock.Any()).Return(rawDataset(), nil).Times(1)

	first, err := service.Dataset(context.Background())
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	second, err := service.Dataset(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)

	status := service.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, uint64(1), status.Version)
	assert.Equal(t, uint64(1), status.Hits)
	assert.Equal(t, uint64(1), status.Misses)
	assert.Equal(t, 60.0, status.TTLSeconds)
	require.NotNil(t, status.ExpiresAt)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 1, 0, 0, time.UTC), *status.ExpiresAt)
}

func TestService_DatasetReloadsAfterExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	service, src := newService(t, clock)

	src.EXPECT().Fetch(gomock.Any()).Return(rawDataset(), nil).Times(2)

	first, err := service.Dataset(context.Background())
	require.NoError(t, err)

	clock.Advance(time.Minute)
	assert.False(t, service.Status().Loaded)

	second, err := service.Dataset(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(2), service.Status().Version)
}

func TestService_FailureIsNotCached(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	service, src := newService(t, clock)

	fileErr := errors.New("open data/kol_master.csv: no such file or directory")
	gomock.InOrder(
		src.EXPECT().Fetch(gomock.Any()).Return(nil, domain.NewUnavailableError("csv", "master", fileErr)),
		src.EXPECT().Fetch(gomock.Any()).Return(rawDataset(), nil),
	)

	dataset, err := service.Dataset(context.Background())
	assert.Nil(t, dataset)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.ErrorIs(t, err, fileErr)

	status := service.Status()
	assert.False(t, status.Loaded)
	assert.Contains(t, status.LastError, "no such file")

	dataset, err = service.Dataset(context.Background())
	require.NoError(t, err)
	assert.Len(t, dataset.Kols, 1)
	assert.Empty(t, service.Status().LastError)
}

func TestService_MalformedSourceIsNoData(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	service, src := newService(t, clock)

	raw := rawDataset()
	raw.Master.Columns = []string{"kol_id", "name"}
	src.EXPECT().Fetch(gomock.Any()).Return(raw, nil)

	dataset, err := service.Dataset(context.Background())

	assert.Nil(t, dataset)
	assert.ErrorIs(t, err, domain.ErrSourceMalformed)
	assert.ErrorIs(t, err, domain.ErrNoData)
	var loadErr *domain.DataLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "csv", loadErr.Source)
}

func TestService_PlainErrorsBecomeDataLoadErrors(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	service, src := newService(t, clock)

	src.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := service.Dataset(context.Background())

	var loadErr *domain.DataLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestService_PanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("csv").AnyTimes()
	src.EXPECT().Fetch(gomock.Any()).Return(rawDataset(), nil)

	service := NewService(src, panicDeriver{}, time.Minute)

	dataset, err := service.Dataset(context.Background())

	assert.Nil(t, dataset)
	assert.ErrorIs(t, err, domain.ErrSourceMalformed)
	assert.Contains(t, err.Error(), "index out of range")
}

func TestService_InvalidateAndRefresh(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	service, src := newService(t, clock)

	src.EXPECT().Fetch(gomock.Any()).Return(rawDataset(), nil).Times(3)

	_, err := service.Dataset(context.Background())
	require.NoError(t, err)

	service.Invalidate()
	assert.False(t, service.Status().Loaded)

	_, err = service.Dataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), service.Status().Version)

	_, err = service.Refresh(context.Background())
	require.NoError(t, err)

	status := service.Status()
	assert.Equal(t, uint64(3), status.Version)
	assert.Equal(t, uint64(3), status.Misses)
	assert.Equal(t, uint64(0), status.Hits)
}

func TestNewService_DefaultTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("csv").AnyTimes()

	service := NewService(src, deriving.NewPipeline(nil), 0)

	assert.Equal(t, DefaultTTL.Seconds(), service.Status().TTLSeconds)
}
