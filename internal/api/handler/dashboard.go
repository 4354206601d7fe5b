package handler

import (
	"net/http"

	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
)

// GetDashboard retorna a página inicial: visão geral sem seleção, resumo do KOL com seleção
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.Dashboard(r.Context(), currentSession(r))
		if err != nil {
			writeServiceError(w, r, "dashboard", err)
			return
		}

		writeJSON(w, r, dashboard)
	})
}

func GetKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kpis, err := service.KPIs(r.Context())
		if err != nil {
			writeServiceError(w, r, "kpis", err)
			return
		}

		writeJSON(w, r, kpis)
	})
}

func GetCharts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		charts, err := service.Charts(r.Context())
		if err != nil {
			writeServiceError(w, r, "charts", err)
			return
		}

		writeJSON(w, r, charts)
	})
}

// GetAlerts retorna contratos a expirar e atividades atrasadas
func GetAlerts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.Alerts(r.Context())
		if err != nil {
			writeServiceError(w, r, "alerts", err)
			return
		}

		writeJSON(w, r, alerts)
	})
}

// GetAvailablePeriods retorna os períodos mensais presentes nas atividades
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.Periods(r.Context())
		if err != nil {
			writeServiceError(w, r, "periods", err)
			return
		}

		writeJSON(w, r, periods)
	})
}

func GetDataQuality(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.DataQuality(r.Context())
		if err != nil {
			writeServiceError(w, r, "data-quality", err)
			return
		}

		writeJSON(w, r, report)
	})
}
