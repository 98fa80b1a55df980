package merging

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-forecaster/internal/domain"
)

// ForecastViewer monta a série histórico + previsão exibida no dashboard
type ForecastViewer interface {
	GetForecastView(ctx context.Context) (*domain.ForecastView, error)
}
