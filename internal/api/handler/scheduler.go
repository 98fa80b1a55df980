package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecaster/pkg/apiErrors"
	"github.com/vfg2006/sales-forecaster/pkg/log"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

// RetrainingScheduler é o agendador de retreino exposto pela API
type RetrainingScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// GetSchedulerStatus retorna o status do agendador de retreino
func GetSchedulerStatus(scheduler RetrainingScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := utils.WriteJSON(w, http.StatusOK, scheduler.GetStatus()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("scheduler: erro ao codificar status")
		}
	})
}

// RunScheduler dispara um ciclo de retreino em segundo plano
func RunScheduler(scheduler RetrainingScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("scheduler: retreino manual solicitado")

		if enabled, ok := scheduler.GetStatus()["sync_enabled"].(bool); ok && !enabled {
			apiErrors.WriteError(w, apiErrors.ErrRetrainingDisabled, "Retreino de previsões desabilitado", nil)
			return
		}

		if !scheduler.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrRetrainingInProgress, "Retreino já está em execução", nil)
			return
		}

		err := utils.WriteJSON(w, http.StatusAccepted, map[string]string{
			"message": "Retreino de previsões iniciado",
		})
		if err != nil {
			logger.WithError(err).Error("scheduler: erro ao codificar resposta")
		}
	})
}
