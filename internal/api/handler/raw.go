package handler

import (
	"net/http"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
)

type rawKolsResponse struct {
	Selection string          `json:"selection"`
	Rows      []domain.KolRow `json:"rows"`
}

type rawActivitiesResponse struct {
	Selection string               `json:"selection"`
	Rows      []domain.ActivityRow `json:"rows"`
}

// GetRawKols retorna a tabela mestre com destaque de contratos próximos do fim
func GetRawKols(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := service.RawData(r.Context(), currentSession(r))
		if err != nil {
			writeServiceError(w, r, "raw-kols", err)
			return
		}

		writeJSON(w, r, rawKolsResponse{Selection: raw.Selection, Rows: raw.Kols})
	})
}

// GetRawActivities retorna as atividades com destaque das atrasadas
func GetRawActivities(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := service.RawData(r.Context(), currentSession(r))
		if err != nil {
			writeServiceError(w, r, "raw-activities", err)
			return
		}

		writeJSON(w, r, rawActivitiesResponse{Selection: raw.Selection, Rows: raw.Activities})
	})
}
