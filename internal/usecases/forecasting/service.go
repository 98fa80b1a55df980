package forecasting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecaster/infrastructure/repository"
	"github.com/vfg2006/sales-forecaster/internal/config"
	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

var _ Trainer = (*Service)(nil)

type Service struct {
	ledgerRepo repository.SalesLedgerRepository
	model      ARModel
	modelName  string
	horizon    int
	now        func() time.Time
}

func NewService(ledgerRepo repository.SalesLedgerRepository, cfg *config.Config) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		model: ARModel{
			Order:         cfg.Forecast.AROrder,
			MaxIterations: cfg.Forecast.MaxIterations,
			Timeout:       cfg.Forecast.FitTimeout(),
		},
		modelName: cfg.Forecast.ModelName,
		horizon:   cfg.Forecast.HorizonDays,
		now:       time.Now,
	}
}

// WithClock substitui o relógio usado em trained_at
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Train(ctx context.Context, windowDays int) (*domain.ForecastBatch, error) {
	if windowDays <= 0 {
		return nil, &domain.InsufficientDataError{Observations: 0, Required: s.model.MinObservations()}
	}

	latest, err := s.ledgerRepo.GetLatestDate(ctx)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, &domain.InsufficientDataError{Observations: 0, Required: s.model.MinObservations()}
	}

	start := utils.AddDays(*latest, -(windowDays - 1))
	totals, err := s.ledgerRepo.GetDailyTotals(ctx, start, *latest)
	if err != nil {
		return nil, err
	}

	if len(totals) < s.model.MinObservations() {
		return nil, &domain.InsufficientDataError{Observations: len(totals), Required: s.model.MinObservations()}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	series := domain.DailyTotalsValues(totals)
	lastTrainingDate := utils.TruncateToDay(totals[len(totals)-1].Date)

	logrus.WithFields(logrus.Fields{
		"start_date":   totals[0].Date.Format(time.DateOnly),
		"end_date":     lastTrainingDate.Format(time.DateOnly),
		"observations": len(series),
		"window_days":  windowDays,
	}).Info("Treinando modelo autorregressivo")

	fit, err := s.model.Fit(series)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	preds, err := fit.Forecast(series, s.horizon)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ForecastPoint, s.horizon)
	for i, value := range preds {
		points[i] = domain.ForecastPoint{
			ForecastDate:         utils.AddDays(lastTrainingDate, i+1),
			PredictedTotalAmount: value,
		}
	}

	batch := &domain.ForecastBatch{
		Model:            s.modelName,
		TrainedAt:        s.now().UTC().Truncate(time.Microsecond),
		Hyperparams:      domain.FormatHyperparams(s.model.Order, 0, 0),
		WindowLength:     windowDays,
		LastTrainingDate: lastTrainingDate,
		Points:           points,
	}

	logrus.WithFields(logrus.Fields{
		"coefficients": fit.Coefficients,
		"iterations":   fit.Iterations,
		"first_date":   points[0].ForecastDate.Format(time.DateOnly),
		"last_date":    points[len(points)-1].ForecastDate.Format(time.DateOnly),
	}).Info("Modelo ajustado, previsões geradas")

	return batch, nil
}
