package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/session"
	"github.com/vfg2006/kol-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kol-dashboard-api/pkg/log"
	"github.com/vfg2006/kol-dashboard-api/pkg/middleware"
)

type selectionRequest struct {
	SelectedKol *string `json:"selected_kol"`
}

// sessionOptions lista as opções de seleção; sem dados, apenas "All"
func sessionOptions(r *http.Request, service reporting.Reporter) []string {
	options, err := service.KolOptions(r.Context())
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("session: options unavailable")
		return []string{domain.SelectionAll}
	}
	return options
}

// GetSession retorna a sessão atual e as opções de seleção
func GetSession(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, domain.SessionView{
			Session: currentSession(r),
			Options: sessionOptions(r, service),
		})
	})
}

// UpdateSelection troca o KOL selecionado da sessão e devolve o token reassinado
func UpdateSelection(manager session.Manager, service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req selectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if req.SelectedKol == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo selected_kol é obrigatório", nil)
			return
		}

		if err := service.ValidateSelection(r.Context(), *req.SelectedKol); err != nil {
			if errors.Is(err, domain.ErrKolNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "KOL não está entre as opções de seleção", map[string]string{
					"selected_kol": *req.SelectedKol,
				})
				return
			}
			writeServiceError(w, r, "update-selection", err)
			return
		}

		updated, token, err := manager.WithSelection(currentSession(r), *req.SelectedKol)
		if err != nil {
			writeServiceError(w, r, "update-selection", err)
			return
		}

		w.Header().Set(middleware.SessionHeader, token)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"session_id": updated.ID,
			"selection":  updated.Selection(),
		}).Info("session: selection updated")

		writeJSON(w, r, domain.SessionView{
			Session: updated,
			Options: sessionOptions(r, service),
		})
	})
}
