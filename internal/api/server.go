package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecaster/internal/api/handler"
	"github.com/vfg2006/sales-forecaster/internal/api/handler/router"
	"github.com/vfg2006/sales-forecaster/internal/config"
	"github.com/vfg2006/sales-forecaster/internal/usecases/merging"
	"github.com/vfg2006/sales-forecaster/internal/usecases/reporting"
	"github.com/vfg2006/sales-forecaster/pkg/metrics"
	"github.com/vfg2006/sales-forecaster/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	DB         handler.Pinger
	Forecasts  handler.ForecastReader
	Viewer     merging.ForecastViewer
	Reporter   reporting.SalesReporter
	Retraining handler.RetrainingScheduler
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
}

func New(cfg *config.Config, services Services) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Forecasts(services.Forecasts)...),
		router.WithRoutes(handler.Dashboard(services.Viewer)...),
		router.WithRoutes(handler.Sales(services.Reporter)...),
		router.WithRoutes(handler.Scheduler(services.Retraining)...),
	)

	if services.Gatherer != nil {
		rt.AddRoutes(handler.Metrics(promhttp.HandlerFor(services.Gatherer, promhttp.HandlerOpts{}))...)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(services.Metrics),
		middleware.Cors(),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Handler expõe a cadeia HTTP completa
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serve até ctx ser cancelado e então desliga o servidor
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
