package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/kol-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kol-dashboard-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeCacheRefresh = "cache-refresh"
	CronJobTypeAll          = "all"
)

// CronJob é um job agendado que também aceita execução manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices associa o tipo do job ao serviço que o executa
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for cronType := range s {
		types = append(types, cronType)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch job, ok := services[cronType]; {
		case cronType == CronJobTypeAll:
			for _, job := range services {
				if job != nil {
					job.TriggerManualSync()
				}
			}
		case ok && job != nil:
			job.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				fmt.Sprintf("Tipo de cron job inválido. Valores aceitos: %s", strings.Join(services.types(), ", ")), nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: manual run triggered")

		writeJSON(w, r, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			if job != nil {
				status[cronType] = job.GetStatus()
			}
		}

		writeJSON(w, r, status)
	}
}
