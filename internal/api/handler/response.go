package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kol-dashboard-api/pkg/log"
	"github.com/vfg2006/kol-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to encode response")
	}
}

// writeServiceError registra e responde o erro de um caso de uso
func writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	log.ForContext(r.Context()).WithError(err).WithField("operation", operation).Warn("handler: request failed")
	apiErrors.WriteFromError(w, err)
}

// currentSession devolve a sessão da requisição; sem middleware, a seleção é "All"
func currentSession(r *http.Request) domain.Session {
	current, _ := middleware.SessionFromContext(r.Context())
	return current
}
