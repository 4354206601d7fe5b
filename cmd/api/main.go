package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source"
	"github.com/vfg2006/kol-dashboard-api/internal/api"
	"github.com/vfg2006/kol-dashboard-api/internal/api/handler"
	"github.com/vfg2006/kol-dashboard-api/internal/config"
	"github.com/vfg2006/kol-dashboard-api/internal/scheduler"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/session"
	"github.com/vfg2006/kol-dashboard-api/pkg/log"
	"github.com/vfg2006/kol-dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("main: log level set to %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A conexão só existe quando a fonte é o postgres
	var conn postgres.Conn
	if cfg.DataSource.Kind == config.SourcePostgres {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		conn = pgConn
	}

	src, err := source.New(cfg, conn)
	if err != nil {
		logrus.WithError(err).Fatal("main: invalid data source configuration")
	}

	m := metrics.New()

	provider := loading.NewService(
		src,
		deriving.NewPipeline(cfg.App.Location),
		cfg.Cache.TTL,
		loading.WithMetrics(m),
	)

	reporter := reporting.NewService(
		provider,
		alerting.NewEvaluator(cfg.Dashboard.AlertWindowDays),
		cfg.Dashboard.TopKolsLimit,
		cfg.App.Location,
	)

	sessions := session.NewService(cfg.Session.Secret, cfg.Session.TTL)

	cacheRefreshService := scheduler.NewCacheRefreshService(provider, cfg)
	if err := cacheRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("main: failed to start cache refresh scheduler")
	}

	// Aquece o cache; uma falha aqui não impede a subida, a próxima leitura tenta de novo
	if _, err := provider.Dataset(ctx); err != nil {
		logrus.WithError(err).Warn("main: initial dataset load failed")
	}

	server, err := api.New(
		cfg,
		reporter,
		sessions,
		provider,
		handler.CronJobServices{handler.CronJobTypeCacheRefresh: cacheRefreshService},
		m,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("main: failed to connect to postgres")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("main: failed to ping postgres")
	}

	logrus.Info("main: postgres connection established")
	return conn
}
