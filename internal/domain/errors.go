package domain

import (
	"errors"
	"fmt"
	"time"
)

// Erros base do pipeline de previsão
var (
	ErrTransientStore      = errors.New("transient store error")
	ErrInsufficientData    = errors.New("insufficient data")
	ErrModelFit            = errors.New("model fit error")
	ErrContinuityViolation = errors.New("continuity violation")
	ErrNotFound            = errors.New("not found")
	ErrInvalidBatch        = errors.New("invalid forecast batch")
)

// TransientStoreError indica falha de conexão ou timeout no banco.
// Recuperável no próximo ciclo.
type TransientStoreError struct {
	Op   string // Operação que falhou
	Code string // Código do driver (quando disponível)
	Err  error  // Erro original
}

func (e *TransientStoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (código: %s): %v", ErrTransientStore, e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrTransientStore, e.Op, e.Err)
}

func (e *TransientStoreError) Unwrap() error {
	return e.Err
}

func (e *TransientStoreError) Is(target error) bool {
	return target == ErrTransientStore
}

// NewTransientStoreError cria um TransientStoreError
func NewTransientStoreError(op string, err error) *TransientStoreError {
	return &TransientStoreError{Op: op, Err: err}
}

// InsufficientDataError indica que a janela tem menos observações que o modelo exige
type InsufficientDataError struct {
	Observations int
	Required     int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %d observações, mínimo %d", ErrInsufficientData, e.Observations, e.Required)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// ModelFitError indica que o otimizador não convergiu ou gerou valores não finitos
type ModelFitError struct {
	Reason string
	Err    error
}

func (e *ModelFitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrModelFit, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrModelFit, e.Reason)
}

func (e *ModelFitError) Unwrap() error {
	return e.Err
}

func (e *ModelFitError) Is(target error) bool {
	return target == ErrModelFit
}

// ContinuityViolationError indica que o lote armazenado não começa no dia
// seguinte ao fim da janela histórica
type ContinuityViolationError struct {
	HistoricalEnd time.Time
	ForecastStart time.Time
	Details       string
}

func (e *ContinuityViolationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", ErrContinuityViolation, e.Details)
	}
	return fmt.Sprintf("%s: previsão começa em %s, histórico termina em %s",
		ErrContinuityViolation,
		e.ForecastStart.Format(time.DateOnly),
		e.HistoricalEnd.Format(time.DateOnly),
	)
}

func (e *ContinuityViolationError) Is(target error) bool {
	return target == ErrContinuityViolation
}

// IsRetryable indica se o erro deve ser tentado novamente no próximo ciclo
// sem avançar o marcador de escrita
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransientStore) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrModelFit)
}
