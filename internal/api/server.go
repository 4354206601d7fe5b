package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/api/handler"
	"github.com/vfg2006/kol-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kol-dashboard-api/internal/config"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/session"
	"github.com/vfg2006/kol-dashboard-api/pkg/metrics"
	"github.com/vfg2006/kol-dashboard-api/pkg/middleware"
)

// Tempo máximo para o desligamento gracioso
const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	sessions session.Manager,
	provider loading.DatasetProvider,
	cronServices handler.CronJobServices,
	m *metrics.Metrics,
) (*Server, error) {
	if reporter == nil || sessions == nil || provider == nil || m == nil {
		return nil, fmt.Errorf("api: reporter, sessions, provider and metrics are required")
	}

	// Rotas /v1 dependem da sessão; healthcheck e métricas não
	sessionBound := []router.Middleware{middleware.SessionMiddleware(sessions)}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(provider)...),
		router.WithRoutes(handler.Metrics(m.Handler())...),
		router.WithGroup(sessionBound, handler.Dashboard(reporter)...),
		router.WithGroup(sessionBound, handler.RawData(reporter)...),
		router.WithGroup(sessionBound, handler.Kols(reporter)...),
		router.WithGroup(sessionBound, handler.Session(sessions, reporter)...),
		router.WithGroup(sessionBound, handler.Cache(provider)...),
		router.WithGroup(sessionBound, handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(m),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: listen failed")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
