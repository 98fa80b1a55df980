package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecaster/infrastructure/migration"
	"github.com/vfg2006/sales-forecaster/infrastructure/repository"
	"github.com/vfg2006/sales-forecaster/internal/api"
	"github.com/vfg2006/sales-forecaster/internal/config"
	"github.com/vfg2006/sales-forecaster/internal/scheduler"
	"github.com/vfg2006/sales-forecaster/internal/usecases/detecting"
	"github.com/vfg2006/sales-forecaster/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecaster/internal/usecases/merging"
	"github.com/vfg2006/sales-forecaster/internal/usecases/reporting"
	"github.com/vfg2006/sales-forecaster/pkg/log"
	"github.com/vfg2006/sales-forecaster/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure("info", cfg.App.LogFormat)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pgConn := pgconn(ctx, cfg.Database)
	defer func() {
		if err := pgConn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o schema")
		}
	}

	registry := metrics.NewRegistry()
	m := metrics.New(registry)

	auditRepo := repository.NewAuditLogRepository(pgConn)
	ledgerRepo := repository.NewSalesLedgerRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn, cfg.Forecast.HorizonDays)

	detector := detecting.NewService(auditRepo)
	trainer := forecasting.NewService(ledgerRepo, cfg)
	viewer := merging.NewService(forecastRepo, ledgerRepo, cfg.Dashboard.HistoryDays)
	reporter := reporting.NewSalesReportService(ledgerRepo, cfg.Dashboard)

	retrainingService := scheduler.NewForecastRetrainingService(detector, trainer, forecastRepo, m, cfg)

	if err := retrainingService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador de retreino de previsões")
	}
	defer retrainingService.Stop()

	if !cfg.Server.Enabled {
		logrus.Info("API desabilitada por configuração, executando apenas o agendador")
		<-ctx.Done()
		logrus.Info("Sinal de interrupção recebido")
		return
	}

	server := api.New(cfg, api.Services{
		DB:         pgConn,
		Forecasts:  forecastRepo,
		Viewer:     viewer,
		Reporter:   reporter,
		Retraining: retrainingService,
		Metrics:    m,
		Gatherer:   registry,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria a conexão com o banco; sem banco o processo não inicia
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
