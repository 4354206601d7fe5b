package handler

import (
	"net/http"

	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/kol-dashboard-api/pkg/log"
)

// GetCacheStatus retorna versão, validade e contadores do cache do dataset
func GetCacheStatus(provider loading.DatasetProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, provider.Status())
	})
}

// RefreshCache descarta a entrada atual e recarrega a fonte imediatamente
func RefreshCache(provider loading.DatasetProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("cache: refresh requested")

		if _, err := provider.Refresh(r.Context()); err != nil {
			writeServiceError(w, r, "cache-refresh", err)
			return
		}

		writeJSON(w, r, provider.Status())
	})
}
