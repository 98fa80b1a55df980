package forecasting

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const (
	gradientThreshold = 1e-9
	// stationaryTolerance é a norma máxima do gradiente aceita quando o
	// otimizador para sem sinalizar convergência
	stationaryTolerance = 1e-6
)

// ARModel ajusta um AR(p) sem diferenciação e sem termo de média móvel
type ARModel struct {
	Order         int
	MaxIterations int
	Timeout       time.Duration
}

// ARFit são os parâmetros ajustados. A série é modelada padronizada:
// z_t = (y_t - Mean) / Scale.
type ARFit struct {
	Mean         float64
	Scale        float64
	Coefficients []float64
	Iterations   int
	Objective    float64
}

// MinObservations é o mínimo de pontos para ajustar o modelo
func (m ARModel) MinObservations() int {
	return m.Order + 1
}

// Fit estima os coeficientes minimizando a soma condicional dos quadrados
// com L-BFGS, a partir da solução de Yule-Walker
func (m ARModel) Fit(series []float64) (*ARFit, error) {
	if len(series) < m.MinObservations() {
		return nil, &domain.InsufficientDataError{Observations: len(series), Required: m.MinObservations()}
	}
	if !utils.AllFinite(series) {
		return nil, &domain.ModelFitError{Reason: "série contém valores não finitos"}
	}

	mean := stat.Mean(series, nil)
	scale := stat.PopStdDev(series, nil)

	fit := &ARFit{
		Mean:         mean,
		Scale:        scale,
		Coefficients: make([]float64, m.Order),
	}

	// Série constante: a previsão é a própria média
	if scale < 1e-12*math.Max(1, math.Abs(mean)) {
		fit.Scale = 0
		return fit, nil
	}

	z := make([]float64, len(series))
	for i, y := range series {
		z[i] = (y - mean) / scale
	}

	initial := yuleWalker(z, m.Order)

	problem := optimize.Problem{
		Func: func(phi []float64) float64 {
			return conditionalSSE(z, phi, nil)
		},
		Grad: func(grad, phi []float64) {
			conditionalSSE(z, phi, grad)
		},
	}

	settings := &optimize.Settings{
		GradientThreshold: gradientThreshold,
		MajorIterations:   m.MaxIterations,
		Runtime:           m.Timeout,
	}

	result, err := optimize.Minimize(problem, initial, settings, &optimize.LBFGS{})
	if result == nil {
		return nil, &domain.ModelFitError{Reason: "otimizador falhou", Err: err}
	}

	// Falha de busca linear perto do ótimo ainda é aceita se o gradiente for desprezível
	if err != nil || !converged(result.Status) {
		if !nearStationary(z, result.X) {
			return nil, &domain.ModelFitError{
				Reason: fmt.Sprintf("otimizador não convergiu (status: %s, iterações: %d)", result.Status, result.Stats.MajorIterations),
				Err:    err,
			}
		}
	}
	if !utils.AllFinite(result.X) || !utils.IsFinite(result.F) {
		return nil, &domain.ModelFitError{Reason: "parâmetros não finitos"}
	}

	copy(fit.Coefficients, result.X)
	fit.Iterations = result.Stats.MajorIterations
	fit.Objective = result.F

	return fit, nil
}

// Forecast projeta steps valores à frente a partir do fim da série usada no ajuste
func (f *ARFit) Forecast(series []float64, steps int) ([]float64, error) {
	order := len(f.Coefficients)
	if len(series) < order {
		return nil, &domain.InsufficientDataError{Observations: len(series), Required: order}
	}

	preds := make([]float64, steps)
	if f.Scale == 0 {
		for i := range preds {
			preds[i] = f.Mean
		}
		return preds, nil
	}

	// Últimos order valores padronizados, mais recente por último
	window := make([]float64, order, order+steps)
	for i, y := range series[len(series)-order:] {
		window[i] = (y - f.Mean) / f.Scale
	}

	for h := 0; h < steps; h++ {
		next := 0.0
		for i, phi := range f.Coefficients {
			next += phi * window[len(window)-1-i]
		}
		window = append(window, next)
		preds[h] = f.Mean + f.Scale*next
	}

	if !utils.AllFinite(preds) {
		return nil, &domain.ModelFitError{Reason: "previsão não finita"}
	}

	return preds, nil
}

// conditionalSSE calcula o erro quadrático médio condicional nas primeiras
// len(phi) observações e, se grad != nil, o seu gradiente
func conditionalSSE(z, phi, grad []float64) float64 {
	p := len(phi)
	n := len(z) - p

	if grad != nil {
		for i := range grad {
			grad[i] = 0
		}
	}

	sse := 0.0
	for t := p; t < len(z); t++ {
		e := z[t]
		for i := 0; i < p; i++ {
			e -= phi[i] * z[t-1-i]
		}
		sse += e * e
		if grad != nil {
			for i := 0; i < p; i++ {
				grad[i] -= 2 * e * z[t-1-i]
			}
		}
	}

	if grad != nil {
		floats.Scale(1/float64(n), grad)
	}

	return sse / float64(n)
}

// yuleWalker resolve as equações de Yule-Walker sobre a série centrada.
// Retorna zeros se o sistema for singular.
func yuleWalker(z []float64, order int) []float64 {
	n := len(z)
	gamma := make([]float64, order+1)
	for k := 0; k <= order; k++ {
		gamma[k] = floats.Dot(z[:n-k], z[k:]) / float64(n)
	}

	toeplitz := mat.NewSymDense(order, nil)
	for i := 0; i < order; i++ {
		for j := i; j < order; j++ {
			toeplitz.SetSym(i, j, gamma[j-i])
		}
	}

	var phi mat.VecDense
	if err := phi.SolveVec(toeplitz, mat.NewVecDense(order, gamma[1:])); err != nil {
		return make([]float64, order)
	}

	initial := make([]float64, order)
	for i := range initial {
		initial[i] = phi.AtVec(i)
	}
	if !utils.AllFinite(initial) {
		return make([]float64, order)
	}

	return initial
}

func nearStationary(z, phi []float64) bool {
	if !utils.AllFinite(phi) {
		return false
	}
	grad := make([]float64, len(phi))
	conditionalSSE(z, phi, grad)
	return floats.Norm(grad, 2) <= stationaryTolerance
}

func converged(status optimize.Status) bool {
	switch status {
	case optimize.Success,
		optimize.GradientThreshold,
		optimize.FunctionConvergence,
		optimize.FunctionThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return true
	default:
		return false
	}
}
