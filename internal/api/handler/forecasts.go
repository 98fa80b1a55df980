package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/pkg/apiErrors"
	"github.com/vfg2006/sales-forecaster/pkg/log"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

// ForecastReader é a parte de leitura do armazenamento de previsões
type ForecastReader interface {
	QueryLatest(ctx context.Context) (*domain.ForecastBatch, error)
	QueryAll(ctx context.Context) ([]*domain.ForecastBatch, error)
}

// GetLatestForecast retorna o lote de previsão mais recente
func GetLatestForecast(store ForecastReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		batch, err := store.QueryLatest(r.Context())
		if errors.Is(err, domain.ErrNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrForecastNotFound, "Nenhuma previsão disponível ainda", nil)
			return
		}
		if err != nil {
			writeServiceError(w, logger, err, "forecasts: erro ao buscar lote mais recente")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, batch); err != nil {
			logger.WithError(err).Error("forecasts: erro ao codificar resposta")
		}
	})
}

// ListForecasts retorna todos os lotes armazenados, do mais antigo ao mais recente
func ListForecasts(store ForecastReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		batches, err := store.QueryAll(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "forecasts: erro ao listar lotes")
			return
		}

		logger.WithField("batches", len(batches)).Debug("forecasts: lotes listados")

		if err := utils.WriteJSON(w, http.StatusOK, batches); err != nil {
			logger.WithError(err).Error("forecasts: erro ao codificar resposta")
		}
	})
}
