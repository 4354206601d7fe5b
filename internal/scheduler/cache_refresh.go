package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/config"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
)

// CacheRefreshConfig representa a configuração do agendador de recarga do cache
type CacheRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CacheRefreshService recarrega periodicamente o dataset em cache, para que
// a primeira requisição após a expiração não pague o custo da leitura da fonte
type CacheRefreshService struct {
	scheduler *gocron.Scheduler
	config    CacheRefreshConfig
	provider  loading.DatasetProvider

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	runs                int
}

// NewCacheRefreshService cria o agendador com base na configuração global
func NewCacheRefreshService(provider loading.DatasetProvider, appConfig *config.Config) *CacheRefreshService {
	refreshConfig := CacheRefreshConfig{
		CronSchedule: appConfig.CacheRefresh.CronSchedule,
		SyncEnabled:  appConfig.CacheRefresh.Enabled,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("scheduler: cache refresh configuration loaded")

	return &CacheRefreshService{
		scheduler: gocron.NewScheduler(location),
		config:    refreshConfig,
		provider:  provider,
	}
}

// Start agenda a recarga e para o agendador quando o contexto é cancelado
func (s *CacheRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: cache refresh disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling cache refresh: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: cache refresh started")

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping cache refresh")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset descarta a entrada atual e carrega a fonte de novo.
// Execuções sobrepostas são ignoradas.
func (s *CacheRefreshService) RefreshDataset(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: cache refresh already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	dataset, err := s.provider.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.runs++

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("scheduler: cache refresh failed")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"kols":       len(dataset.Kols),
		"activities": len(dataset.Activities),
	}).Info("scheduler: cache refresh completed")
}

// TriggerManualSync dispara uma recarga fora do agendamento
func (s *CacheRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: cache refresh already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: manual cache refresh triggered")
	go s.RefreshDataset(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CacheRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"runs":                   s.runs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
