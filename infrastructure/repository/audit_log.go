package repository

//go:generate mockgen -source=audit_log.go -destination=mocks/audit_log.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecaster/infrastructure/database/postgres"
)

const (
	auditLogTable = "audit_log a"
)

// AuditLogRepository lê o marcador de escrita do livro-razão
type AuditLogRepository interface {
	// GetLastMarker retorna MAX(id) do audit_log, ou 0 se vazio
	GetLastMarker(ctx context.Context) (int64, error)
}

type auditLogRepository struct {
	conn postgres.Conn
}

func NewAuditLogRepository(conn postgres.Conn) AuditLogRepository {
	return &auditLogRepository{
		conn: conn,
	}
}

func (r *auditLogRepository) GetLastMarker(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COALESCE(MAX(a.id), 0)").
		From(auditLogTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	var marker int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&marker); err != nil {
		return 0, storeError("ler marcador do audit_log", err)
	}

	return marker, nil
}
