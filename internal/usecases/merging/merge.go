package merging

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

// Merge concatena o histórico diário com os pontos do lote. O primeiro ponto
// previsto precisa cair exatamente no dia seguinte ao último dia histórico.
func Merge(historical []domain.DailyTotal, batch *domain.ForecastBatch) ([]domain.MergedPoint, error) {
	if len(historical) == 0 {
		return nil, &domain.ContinuityViolationError{Details: "histórico vazio"}
	}

	forecastStart, ok := batch.FirstForecastDate()
	if !ok {
		return nil, &domain.ContinuityViolationError{Details: "lote de previsão vazio"}
	}

	sorted := make([]domain.DailyTotal, len(historical))
	copy(sorted, historical)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	historicalEnd := utils.TruncateToDay(sorted[len(sorted)-1].Date)
	forecastStart = utils.TruncateToDay(forecastStart)

	if !forecastStart.Equal(utils.NextDay(historicalEnd)) {
		return nil, &domain.ContinuityViolationError{
			HistoricalEnd: historicalEnd,
			ForecastStart: forecastStart,
			Details:       describeDiscontinuity(historicalEnd, forecastStart),
		}
	}

	merged := make([]domain.MergedPoint, 0, len(sorted)+len(batch.Points))
	for _, h := range sorted {
		value := h.TotalAmount
		merged = append(merged, domain.MergedPoint{
			Date:            utils.TruncateToDay(h.Date),
			HistoricalValue: &value,
		})
	}
	for _, p := range batch.Points {
		value := p.PredictedTotalAmount
		merged = append(merged, domain.MergedPoint{
			Date:          utils.TruncateToDay(p.ForecastDate),
			ForecastValue: &value,
		})
	}

	return merged, nil
}

func describeDiscontinuity(historicalEnd, forecastStart time.Time) string {
	days := int(forecastStart.Sub(historicalEnd).Hours() / 24)
	switch {
	case days <= 0:
		return fmt.Sprintf("previsão começa em %s e sobrepõe o histórico que termina em %s",
			forecastStart.Format(time.DateOnly), historicalEnd.Format(time.DateOnly))
	default:
		return fmt.Sprintf("lacuna de %d dias entre o histórico (%s) e a previsão (%s)",
			days-1, historicalEnd.Format(time.DateOnly), forecastStart.Format(time.DateOnly))
	}
}
