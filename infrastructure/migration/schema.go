// Package migration cria o schema usado pelo pipeline de previsão
package migration

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecaster/infrastructure/database/postgres"
)

// Statements são idempotentes e aplicados em ordem numa única transação
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS sales_db (
		date             TIMESTAMP WITHOUT TIME ZONE NOT NULL,
		customer_id      VARCHAR(9),
		gender           SMALLINT,
		age              SMALLINT,
		product_category VARCHAR(11),
		quantity         REAL,
		price_per_unit   REAL,
		total_amount     REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_db_date ON sales_db (date)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id         BIGSERIAL PRIMARY KEY,
		table_name TEXT NOT NULL,
		operation  TEXT NOT NULL,
		changed_at TIMESTAMP WITHOUT TIME ZONE NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
	)`,
	`CREATE OR REPLACE FUNCTION log_sales_db_change() RETURNS TRIGGER AS $$
	BEGIN
		INSERT INTO audit_log (table_name, operation) VALUES (TG_TABLE_NAME, TG_OP);
		RETURN NULL;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS sales_db_audit ON sales_db`,
	`CREATE TRIGGER sales_db_audit
		AFTER INSERT OR UPDATE OR DELETE ON sales_db
		FOR EACH STATEMENT EXECUTE FUNCTION log_sales_db_change()`,
	// predicted_total_amount é float4: valores lidos de volta têm precisão de float32
	`CREATE TABLE IF NOT EXISTS forecasts (
		model                  VARCHAR(32) NOT NULL,
		trained_at             TIMESTAMP WITHOUT TIME ZONE NOT NULL,
		hyperparams            VARCHAR(128),
		n_training_days        INTEGER,
		last_training_date     TIMESTAMP WITHOUT TIME ZONE NOT NULL,
		forecast_date          TIMESTAMP WITHOUT TIME ZONE NOT NULL,
		predicted_total_amount REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_forecasts_batch ON forecasts (last_training_date DESC, trained_at DESC)`,
}

// Apply cria tabelas, índices e o gatilho de auditoria se ainda não existirem
func Apply(ctx context.Context, conn postgres.Conn) error {
	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range Statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrapf(err, "erro ao aplicar instrução %d do schema", i+1)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(Statements)).Info("Schema do banco aplicado")
	return nil
}
