package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/frontrow-invoice-api/pkg/apiErrors"
)

//go:generate mockgen -source=cron.go -destination=mocks/cron.go -package=mocks

const CronJobTypeRefresh = "refresh"

// CronJobService é um job agendado que também pode ser disparado manualmente
type CronJobService interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis para execução manual
type CronJobServices struct {
	AutoRefreshService CronJobService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeRefresh:
			if services.AutoRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrJobUnavailable, "Serviço de atualização automática não disponível", nil)
				return
			}
			if !services.AutoRefreshService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Atualização automática já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: refresh", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AutoRefreshService != nil {
			status[CronJobTypeRefresh] = services.AutoRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
