// Package loading mantém o dataset derivado em cache por um TTL fixo.
//
// Ciclo de vida da entrada: criada na primeira leitura, descartada quando o
// TTL expira ou por Invalidate/Refresh. Falhas de carga não são guardadas;
// a próxima leitura tenta de novo.
package loading

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/kol-dashboard-api/pkg/metrics"
)

// DefaultTTL é o tempo de vida padrão da entrada do cache
const DefaultTTL = 60 * time.Second

// entry é a entrada única do cache, identificada pela versão
type entry struct {
	dataset   *domain.Dataset
	version   uint64
	loadedAt  time.Time
	expiresAt time.Time
}

type Service struct {
	source  source.Source
	deriver deriving.Deriver
	ttl     time.Duration
	clock   func() time.Time
	metrics *metrics.Metrics

	mu        sync.Mutex
	current   *entry
	version   uint64
	hits      uint64
	misses    uint64
	lastError string
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(src source.Source, deriver deriving.Deriver, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Service{
		source:  src,
		deriver: deriver,
		ttl:     ttl,
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Dataset(ctx context.Context) (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if s.current != nil {
		if now.Before(s.current.expiresAt) {
			s.hits++
			if s.metrics != nil {
				s.metrics.CacheHit()
			}
			return s.current.dataset, nil
		}

		logrus.WithField("version", s.current.version).Debug("cache: entry expired")
		s.current = nil
	}

	s.misses++
	if s.metrics != nil {
		s.metrics.CacheMiss()
	}

	return s.load(ctx, now)
}

func (s *Service) Refresh(ctx context.Context) (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.misses++
	if s.metrics != nil {
		s.metrics.CacheMiss()
	}

	return s.load(ctx, s.clock())
}

func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		logrus.WithField("version", s.current.version).Info("cache: entry invalidated")
	}
	s.current = nil
}

func (s *Service) Status() domain.CacheStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := domain.CacheStatus{
		Source:     s.source.Name(),
		TTLSeconds: s.ttl.Seconds(),
		Hits:       s.hits,
		Misses:     s.misses,
		LastError:  s.lastError,
	}

	// Uma entrada expirada ainda não descartada já não vale
	if s.current != nil && s.clock().Before(s.current.expiresAt) {
		loadedAt := s.current.loadedAt
		expiresAt := s.current.expiresAt
		status.Loaded = true
		status.Version = s.current.version
		status.LoadedAt = &loadedAt
		status.ExpiresAt = &expiresAt
	}

	return status
}

// load busca e deriva o dataset. Deve ser chamado com s.mu travado.
func (s *Service) load(ctx context.Context, now time.Time) (dataset *domain.Dataset, err error) {
	started := time.Now()
	sourceName := s.source.Name()

	defer func() {
		if r := recover(); r != nil {
			dataset = nil
			err = domain.NewMalformedError(sourceName, "panic while loading", fmt.Errorf("%v", r))
		}

		result := metrics.LoadSuccess
		if err != nil {
			result = metrics.LoadFailure
			s.lastError = err.Error()
			logrus.WithError(err).WithField("source", sourceName).Error("cache: dataset load failed")
		}
		if s.metrics != nil {
			s.metrics.ObserveLoad(sourceName, result, time.Since(started).Seconds())
		}
	}()

	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, domain.AsDataLoadError(sourceName, err)
	}

	dataset, err = s.deriver.Derive(raw)
	if err != nil {
		return nil, domain.AsDataLoadError(sourceName, err)
	}

	s.version++
	s.lastError = ""
	s.current = &entry{
		dataset:   dataset,
		version:   s.version,
		loadedAt:  now,
		expiresAt: now.Add(s.ttl),
	}

	if s.metrics != nil {
		s.metrics.SetDataset(len(dataset.Kols), len(dataset.Activities), len(dataset.Issues))
	}

	logrus.WithFields(logrus.Fields{
		"source":     sourceName,
		"version":    s.version,
		"kols":       len(dataset.Kols),
		"activities": len(dataset.Activities),
		"issues":     len(dataset.Issues),
	}).Info("cache: dataset loaded")

	return dataset, nil
}
