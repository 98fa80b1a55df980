package merging

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecaster/infrastructure/repository"
	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

const emptyViewMessage = "nenhuma previsão disponível ainda"

var _ ForecastViewer = (*Service)(nil)

type Service struct {
	forecastRepo repository.ForecastRepository
	ledgerRepo   repository.SalesLedgerRepository
	historyDays  int
}

func NewService(
	forecastRepo repository.ForecastRepository,
	ledgerRepo repository.SalesLedgerRepository,
	historyDays int,
) *Service {
	return &Service{
		forecastRepo: forecastRepo,
		ledgerRepo:   ledgerRepo,
		historyDays:  historyDays,
	}
}

// GetForecastView retorna a série contínua do lote mais recente. Ausência de
// lote e descontinuidade viram estados da view; erros de banco são retornados.
func (s *Service) GetForecastView(ctx context.Context) (*domain.ForecastView, error) {
	batch, err := s.forecastRepo.QueryLatest(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ForecastView{
			Status:  domain.ForecastViewEmpty,
			Message: emptyViewMessage,
			Series:  []domain.MergedPoint{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	end := utils.TruncateToDay(batch.LastTrainingDate)
	start := utils.AddDays(end, -s.historyDays)

	historical, err := s.ledgerRepo.GetDailyTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}

	series, err := Merge(historical, batch)
	if errors.Is(err, domain.ErrContinuityViolation) {
		logrus.WithFields(logrus.Fields{
			"last_training_date": end,
			"trained_at":         batch.TrainedAt,
		}).WithError(err).Warn("Previsão armazenada não continua o histórico")

		return &domain.ForecastView{
			Status:  domain.ForecastViewContinuityViolation,
			Message: err.Error(),
			Batch:   batch,
			Series:  []domain.MergedPoint{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.ForecastView{
		Status: domain.ForecastViewOK,
		Batch:  batch,
		Series: series,
	}, nil
}
