package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/internal/config"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func newRefreshConfig(enabled bool, cron string) *config.Config {
	cfg := &config.Config{}
	cfg.CacheRefresh.Enabled = enabled
	cfg.CacheRefresh.CronSchedule = cron
	cfg.App.Location = time.UTC
	return cfg
}

func TestCacheRefreshService_RefreshDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)

	tests := []struct {
		name      string
		setup     func()
		wantError string
	}{
		{
			name: "Recarga bem sucedida limpa o último erro",
			setup: func() {
				provider.EXPECT().Refresh(gomock.Any()).Return(&domain.Dataset{
					Kols: []domain.KolRecord{{KolID: "K1"}},
				}, nil)
			},
		},
		{
			name: "Falha na recarga fica registrada no status",
			setup: func() {
				provider.EXPECT().Refresh(gomock.Any()).Return(nil, domain.NewUnavailableError("csv", "missing file", nil))
			},
			wantError: "csv: source unavailable: missing file",
		},
	}

	service := NewCacheRefreshService(provider, newRefreshConfig(false, "*/5 * * * *"))

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.RefreshDataset(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.Equal(t, i+1, status["runs"])
			assert.Equal(t, false, status["sync_running"])
		})
	}
}

func TestCacheRefreshService_SkipsWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)

	service := NewCacheRefreshService(provider, newRefreshConfig(false, ""))
	service.syncRunning = true

	service.RefreshDataset(context.Background())
	service.TriggerManualSync()

	assert.Equal(t, 0, service.GetStatus()["runs"])
}

func TestCacheRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)

	called := make(chan struct{})
	provider.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) (*domain.Dataset, error) {
		close(called)
		return &domain.Dataset{}, nil
	})

	service := NewCacheRefreshService(provider, newRefreshConfig(false, ""))
	service.TriggerManualSync()

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("manual refresh was not triggered")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["runs"] == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCacheRefreshService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatasetProvider(ctrl)

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := NewCacheRefreshService(provider, newRefreshConfig(false, "invalid"))
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Expressão cron inválida retorna erro", func(t *testing.T) {
		service := NewCacheRefreshService(provider, newRefreshConfig(true, "not a cron"))
		err := service.Start(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheduling cache refresh")
	})

	t.Run("Agendamento válido para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewCacheRefreshService(provider, newRefreshConfig(true, "0 3 * * *"))

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, 2*time.Second, 10*time.Millisecond)
	})
}

