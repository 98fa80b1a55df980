// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecaster/internal/domain"
)

// storeError classifica falhas do driver como transitórias, anexando o
// código do Postgres quando disponível
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}

	storeErr := domain.NewTransientStoreError(op, err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		storeErr.Code = string(pqErr.Code)
	}

	return storeErr
}
