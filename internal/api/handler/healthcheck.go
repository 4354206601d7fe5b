package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
)

// HealthcheckHandler responde enquanto o processo estiver de pé, mesmo sem
// dataset carregado; o estado do cache segue apenas como informação
func HealthcheckHandler(provider loading.DatasetProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := provider.Status()

		writeJSON(w, r, map[string]any{
			"status":         "ok",
			"time":           time.Now().Format(time.RFC3339),
			"source":         status.Source,
			"dataset_loaded": status.Loaded,
		})
	})
}
