package forecasting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-forecaster/internal/domain"
)

// Trainer define a interface de treino do modelo de previsão
type Trainer interface {
	// Train ajusta o modelo nos últimos windowDays dias do livro-razão e
	// retorna um lote com o horizonte fixo de previsão
	Train(ctx context.Context, windowDays int) (*domain.ForecastBatch, error)
}
