package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/internal/usecases/merging"
	"github.com/vfg2006/sales-forecaster/pkg/log"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

// GetDashboardForecast retorna o histórico recente seguido da previsão mais recente.
// Descontinuidade entre as séries responde 409 com a view em estado de erro.
func GetDashboardForecast(viewer merging.ForecastViewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := viewer.GetForecastView(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "dashboard: erro ao montar série de previsão")
			return
		}

		status := http.StatusOK
		if view.Status == domain.ForecastViewContinuityViolation {
			status = http.StatusConflict
		}

		if err := utils.WriteJSON(w, status, view); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}
