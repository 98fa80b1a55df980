package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

const (
	// ForecastHorizonDays é o número fixo de dias previstos por lote
	ForecastHorizonDays = 7
	// AROrder é a ordem fixa do modelo autorregressivo
	AROrder = 3
	// DefaultModelName é o nome gravado na coluna model
	DefaultModelName = "ARIMA"
)

// ForecastPoint é a previsão de receita para um dia
type ForecastPoint struct {
	ForecastDate         time.Time `json:"forecast_date"`
	PredictedTotalAmount float64   `json:"predicted_total_amount"`
}

// ForecastBatch é um lote imutável de previsões gerado por um treino
type ForecastBatch struct {
	Model            string          `json:"model"`
	TrainedAt        time.Time       `json:"trained_at"`
	Hyperparams      string          `json:"hyperparams"`
	WindowLength     int             `json:"n_training_days"`
	LastTrainingDate time.Time       `json:"last_training_date"`
	Points           []ForecastPoint `json:"points"`
}

// FormatHyperparams descreve a ordem (p,d,q) do modelo
func FormatHyperparams(p, d, q int) string {
	return fmt.Sprintf("{order=(%d,%d,%d)}", p, d, q)
}

// Validate verifica as invariantes de um lote antes de persistir:
// exatamente horizon pontos, em dias consecutivos, começando no dia
// seguinte a LastTrainingDate
func (b *ForecastBatch) Validate(horizon int) error {
	if b == nil {
		return fmt.Errorf("%w: lote nulo", ErrInvalidBatch)
	}
	if b.Model == "" {
		return fmt.Errorf("%w: modelo não informado", ErrInvalidBatch)
	}
	if b.TrainedAt.IsZero() || b.LastTrainingDate.IsZero() {
		return fmt.Errorf("%w: datas de treino ausentes", ErrInvalidBatch)
	}
	if len(b.Points) != horizon {
		return fmt.Errorf("%w: esperado %d pontos, recebido %d", ErrInvalidBatch, horizon, len(b.Points))
	}

	expected := utils.NextDay(b.LastTrainingDate)
	for i, p := range b.Points {
		if !utils.SameDay(p.ForecastDate, expected) {
			return fmt.Errorf("%w: ponto %d em %s, esperado %s", ErrInvalidBatch, i,
				p.ForecastDate.Format(time.DateOnly), expected.Format(time.DateOnly))
		}
		if !utils.IsFinite(p.PredictedTotalAmount) {
			return fmt.Errorf("%w: valor não finito em %s", ErrInvalidBatch, p.ForecastDate.Format(time.DateOnly))
		}
		expected = utils.NextDay(expected)
	}

	return nil
}

// FirstForecastDate retorna a data do primeiro ponto do lote
func (b *ForecastBatch) FirstForecastDate() (time.Time, bool) {
	if b == nil || len(b.Points) == 0 {
		return time.Time{}, false
	}
	return b.Points[0].ForecastDate, true
}

// MergedPoint é um ponto da série contínua histórico + previsão.
// Exatamente um dos valores está presente.
type MergedPoint struct {
	Date            time.Time `json:"date"`
	HistoricalValue *float64  `json:"historical_value,omitempty"`
	ForecastValue   *float64  `json:"forecast_value,omitempty"`
}

// ForecastViewStatus é o estado exibido pela camada de apresentação
type ForecastViewStatus string

const (
	ForecastViewOK                  ForecastViewStatus = "ok"
	ForecastViewEmpty               ForecastViewStatus = "empty"
	ForecastViewContinuityViolation ForecastViewStatus = "continuity_violation"
)

// ForecastView é o que a camada de apresentação renderiza
type ForecastView struct {
	Status  ForecastViewStatus `json:"status"`
	Message string             `json:"message,omitempty"`
	Batch   *ForecastBatch     `json:"batch,omitempty"`
	Series  []MergedPoint      `json:"series"`
}
