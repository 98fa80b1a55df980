// Package scheduler contém o agendador de retreino das previsões de vendas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecaster/infrastructure/repository"
	"github.com/vfg2006/sales-forecaster/internal/config"
	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/internal/usecases/detecting"
	"github.com/vfg2006/sales-forecaster/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecaster/pkg/metrics"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

// TickOutcome é o resultado de um ciclo do agendador
type TickOutcome string

const (
	TickNoChange TickOutcome = "no_change"
	TickTrained  TickOutcome = "trained"
	TickFailed   TickOutcome = "failed"
	TickSkipped  TickOutcome = "skipped"
)

type TickResult struct {
	Outcome TickOutcome
	// Marker é o marcador mantido após o ciclo
	Marker int64
	Batch  *domain.ForecastBatch
	Err    error
}

type ForecastRetrainingConfig struct {
	PollInterval time.Duration
	WindowDays   int
	SyncEnabled  bool
}

type ForecastRetrainingService struct {
	scheduler    *gocron.Scheduler
	detector     detecting.ChangeDetector
	trainer      forecasting.Trainer
	forecastRepo repository.ForecastRepository
	metrics      *metrics.Metrics
	config       ForecastRetrainingConfig

	runCtx    context.Context
	runCancel context.CancelFunc

	syncMutex           sync.Mutex
	syncRunning         bool
	lastMarker          int64
	lastOutcome         TickOutcome
	lastError           string
	lastTrainingDate    time.Time
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewForecastRetrainingService(
	detector detecting.ChangeDetector,
	trainer forecasting.Trainer,
	forecastRepo repository.ForecastRepository,
	m *metrics.Metrics,
	cfg *config.Config,
) *ForecastRetrainingService {
	retrainingConfig := ForecastRetrainingConfig{
		PollInterval: cfg.Retraining.PollInterval(),
		WindowDays:   cfg.Forecast.WindowDays,
		SyncEnabled:  cfg.Retraining.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"poll_interval": retrainingConfig.PollInterval.String(),
		"window_days":   retrainingConfig.WindowDays,
	}).Info("Configuração do agendador de retreino carregada")

	runCtx, runCancel := context.WithCancel(context.Background())

	return &ForecastRetrainingService{
		scheduler:    gocron.NewScheduler(time.UTC),
		detector:     detector,
		trainer:      trainer,
		forecastRepo: forecastRepo,
		metrics:      m,
		config:       retrainingConfig,
		runCtx:       runCtx,
		runCancel:    runCancel,
		lastMarker:   detecting.NoMarker,
	}
}

func (s *ForecastRetrainingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Retreino de previsões desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.PollInterval.String()).Info("Iniciando agendador de retreino de previsões")

	// O primeiro ciclo roda imediatamente; SingletonMode evita ciclos sobrepostos
	_, err := s.scheduler.Every(s.config.PollInterval).SingletonMode().Do(func() {
		s.Tick(s.runCtx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retreino de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.runCtx.Done():
		}
	}()

	return nil
}

// Stop interrompe o agendamento e cancela o ciclo em andamento
func (s *ForecastRetrainingService) Stop() {
	if s.runCtx.Err() != nil {
		return
	}
	logrus.Info("Parando agendador de retreino de previsões")
	s.runCancel()
	s.scheduler.Stop()
}

// Tick executa um ciclo: verifica o marcador e, havendo escritas novas,
// treina e persiste um lote. O marcador só avança após a gravação.
func (s *ForecastRetrainingService) Tick(ctx context.Context) TickResult {
	s.syncMutex.Lock()
	if s.syncRunning {
		marker := s.lastMarker
		s.syncMutex.Unlock()
		logrus.Warn("Retreino de previsões já está em execução, ciclo ignorado")
		s.observeOutcome(TickSkipped)
		return TickResult{Outcome: TickSkipped, Marker: marker}
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	previous := s.lastMarker
	s.syncMutex.Unlock()

	start := time.Now()
	logger := logrus.WithFields(logrus.Fields{
		"tick_id":         utils.GenerateID(),
		"previous_marker": previous,
	})

	result := s.runTick(ctx, previous, logger)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastMarker = result.Marker
	s.lastOutcome = result.Outcome
	s.lastError = ""
	if result.Err != nil {
		s.lastError = result.Err.Error()
	}
	if result.Batch != nil {
		s.lastTrainingDate = result.Batch.LastTrainingDate
	}
	s.syncMutex.Unlock()

	s.observeOutcome(result.Outcome)

	entry := logger.WithFields(logrus.Fields{
		"outcome":  result.Outcome,
		"marker":   result.Marker,
		"duration": time.Since(start).String(),
	})
	switch result.Outcome {
	case TickFailed:
		entry.WithError(result.Err).WithField("retryable", domain.IsRetryable(result.Err)).
			Warn("Ciclo de retreino falhou, será tentado novamente")
	case TickTrained:
		entry.WithField("last_training_date", result.Batch.LastTrainingDate.Format(time.DateOnly)).
			Info("Ciclo de retreino concluído")
	default:
		entry.Debug("Ciclo de retreino concluído")
	}

	return result
}

func (s *ForecastRetrainingService) runTick(ctx context.Context, previous int64, logger *logrus.Entry) TickResult {
	changed, current, err := s.detector.Check(ctx, previous)
	if err != nil {
		return TickResult{Outcome: TickFailed, Marker: previous, Err: err}
	}
	if !changed {
		return TickResult{Outcome: TickNoChange, Marker: previous}
	}

	logger.WithField("current_marker", current).Info("Escritas novas no livro-razão, retreinando modelo")

	if err := ctx.Err(); err != nil {
		return TickResult{Outcome: TickFailed, Marker: previous, Err: err}
	}

	trainingStart := time.Now()
	batch, err := s.trainer.Train(ctx, s.config.WindowDays)
	if s.metrics != nil {
		s.metrics.TrainingDuration.Observe(time.Since(trainingStart).Seconds())
	}
	if err != nil {
		return TickResult{Outcome: TickFailed, Marker: previous, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return TickResult{Outcome: TickFailed, Marker: previous, Err: err}
	}

	if err := s.forecastRepo.Persist(ctx, batch); err != nil {
		return TickResult{Outcome: TickFailed, Marker: previous, Err: err}
	}

	if s.metrics != nil {
		s.metrics.PersistedBatches.Inc()
		s.metrics.LastMarker.Set(float64(current))
	}

	return TickResult{Outcome: TickTrained, Marker: current, Batch: batch}
}

func (s *ForecastRetrainingService) observeOutcome(outcome TickOutcome) {
	if s.metrics == nil {
		return
	}
	s.metrics.TickOutcomes.WithLabelValues(string(outcome)).Inc()
}

// TriggerManualSync inicia manualmente um ciclo de retreino.
// Retorna false se já houver um ciclo em andamento.
func (s *ForecastRetrainingService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retreino já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando retreino manual de previsões")
	go s.Tick(s.runCtx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ForecastRetrainingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"poll_interval":          s.config.PollInterval.String(),
		"window_days":            s.config.WindowDays,
		"running":                s.syncRunning,
		"last_marker":            s.lastMarker,
		"last_outcome":           s.lastOutcome,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if !s.lastTrainingDate.IsZero() {
		status["last_training_date"] = s.lastTrainingDate.Format(time.DateOnly)
	}

	return status
}

// LastMarker retorna o último marcador processado com sucesso
func (s *ForecastRetrainingService) LastMarker() int64 {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastMarker
}
