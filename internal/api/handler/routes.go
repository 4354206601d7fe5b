package handler

import (
	"net/http"

	"github.com/vfg2006/kol-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/session"
)

func Healthcheck(provider loading.DatasetProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(provider),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/charts",
			Method:  http.MethodGet,
			Handler: GetCharts(service),
		},
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: GetAlerts(service),
		},
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
		{
			Path:    "/v1/data-quality",
			Method:  http.MethodGet,
			Handler: GetDataQuality(service),
		},
	}
}

func RawData(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/raw/kols",
			Method:  http.MethodGet,
			Handler: GetRawKols(service),
		},
		{
			Path:    "/v1/raw/activities",
			Method:  http.MethodGet,
			Handler: GetRawActivities(service),
		},
	}
}

func Kols(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kols",
			Method:  http.MethodGet,
			Handler: ListKolOptions(service),
		},
		{
			Path:    "/v1/kols/:id",
			Method:  http.MethodGet,
			Handler: GetKolDetail(service),
		},
	}
}

func Session(manager session.Manager, service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/session",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
		{
			Path:    "/v1/session/selection",
			Method:  http.MethodPut,
			Handler: UpdateSelection(manager, service),
		},
	}
}

func Cache(provider loading.DatasetProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache",
			Method:  http.MethodGet,
			Handler: GetCacheStatus(provider),
		},
		{
			Path:    "/v1/cache/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCache(provider),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
