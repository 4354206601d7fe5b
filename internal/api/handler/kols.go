package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kol-dashboard-api/pkg/apiErrors"
)

// ListKolOptions retorna as opções de seleção, começando por "All"
func ListKolOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.KolOptions(r.Context())
		if err != nil {
			writeServiceError(w, r, "kol-options", err)
			return
		}

		writeJSON(w, r, map[string]any{"options": options})
	})
}

// GetKolDetail retorna o registro, as atividades e os indicadores de um KOL
func GetKolDetail(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kolID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if kolID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do KOL não informado", nil)
			return
		}

		detail, err := service.KolDetail(r.Context(), kolID)
		if err != nil {
			writeServiceError(w, r, "kol-detail", err)
			return
		}

		writeJSON(w, r, detail)
	})
}
