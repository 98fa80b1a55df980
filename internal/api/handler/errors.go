package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/pkg/apiErrors"
	"github.com/vfg2006/sales-forecaster/pkg/log"
)

// writeServiceError responde erros de banco: transitórios viram 503, o resto 500
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	logger.WithError(err).Error(message)

	if errors.Is(err, domain.ErrTransientStore) {
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, message, nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}

// parseLimit lê o parâmetro limit; ausente retorna 0
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit deve ser um inteiro não negativo")
	}
	return limit, nil
}
