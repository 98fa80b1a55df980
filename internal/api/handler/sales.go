package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-forecaster/internal/usecases/reporting"
	"github.com/vfg2006/sales-forecaster/pkg/apiErrors"
	"github.com/vfg2006/sales-forecaster/pkg/log"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

type salesListing func(ctx context.Context, limit int) (any, error)

func listSales(name string, list salesListing) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		sales, err := list(r.Context(), limit)
		if err != nil {
			writeServiceError(w, logger, err, name+": erro ao buscar vendas")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, sales); err != nil {
			logger.WithError(err).Error(name + ": erro ao codificar resposta")
		}
	})
}

// GetTopSales retorna as vendas de maior valor
func GetTopSales(service reporting.SalesReporter) http.Handler {
	return listSales("top-sales", func(ctx context.Context, limit int) (any, error) {
		return service.GetTopSales(ctx, limit)
	})
}

// GetRecentSales retorna as vendas mais recentes
func GetRecentSales(service reporting.SalesReporter) http.Handler {
	return listSales("recent-sales", func(ctx context.Context, limit int) (any, error) {
		return service.GetRecentSales(ctx, limit)
	})
}

// GetMonthlyCategories retorna a receita mensal por categoria de produto
func GetMonthlyCategories(service reporting.SalesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		reports, err := service.GetMonthlyCategories(r.Context())
		if err != nil {
			writeServiceError(w, logger, err, "monthly-categories: erro ao buscar totais mensais")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, reports); err != nil {
			logger.WithError(err).Error("monthly-categories: erro ao codificar resposta")
		}
	})
}
