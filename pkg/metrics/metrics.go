// Package metrics expõe os coletores Prometheus do pipeline de previsão
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sales_forecaster"

type Metrics struct {
	TickOutcomes     *prometheus.CounterVec
	TrainingDuration prometheus.Histogram
	LastMarker       prometheus.Gauge
	PersistedBatches prometheus.Counter
	HTTPRequests     *prometheus.HistogramVec
}

// New registra os coletores em reg. Cada registry aceita uma única instância.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TickOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "retraining",
			Name:      "ticks_total",
			Help:      "Ciclos do agendador por resultado.",
		}, []string{"outcome"}),
		TrainingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "retraining",
			Name:      "training_duration_seconds",
			Help:      "Duração do treino do modelo, incluindo leitura do livro-razão.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		LastMarker: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "retraining",
			Name:      "last_marker",
			Help:      "Último marcador de escrita processado com sucesso.",
		}),
		PersistedBatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persisted_batches_total",
			Help:      "Lotes de previsão gravados.",
		}),
		HTTPRequests: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// NewRegistry cria um registry com os coletores de processo e runtime
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
