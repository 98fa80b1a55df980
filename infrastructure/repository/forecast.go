package repository

//go:generate mockgen -source=forecast.go -destination=mocks/forecast.go -package=mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecaster/internal/domain"
	"github.com/vfg2006/sales-forecaster/pkg/utils"
)

const (
	forecastsTableName = "forecasts"
	forecastsTable     = "forecasts f"
)

var forecastColumns = []string{
	"f.model",
	"f.trained_at",
	"f.hyperparams",
	"f.n_training_days",
	"f.last_training_date",
	"f.forecast_date",
	"f.predicted_total_amount",
}

// latestBatchKey seleciona a chave do lote mais recente: maior
// last_training_date, empate resolvido pelo maior trained_at
const latestBatchKey = "(f.last_training_date, f.trained_at) = (" +
	"SELECT l.last_training_date, l.trained_at FROM forecasts l " +
	"ORDER BY l.last_training_date DESC, l.trained_at DESC LIMIT 1)"

// ForecastRepository é o armazenamento append-only dos lotes de previsão
type ForecastRepository interface {
	// Persist grava todos os pontos do lote numa única transação
	Persist(ctx context.Context, batch *domain.ForecastBatch) error
	// QueryLatest retorna o lote mais recente ou domain.ErrNotFound
	QueryLatest(ctx context.Context) (*domain.ForecastBatch, error)
	// QueryAll retorna todos os lotes, do mais antigo ao mais recente
	QueryAll(ctx context.Context) ([]*domain.ForecastBatch, error)
	// Count retorna a quantidade de lotes armazenados
	Count(ctx context.Context) (int, error)
}

type forecastRepository struct {
	conn    postgres.Conn
	horizon int
}

func NewForecastRepository(conn postgres.Conn, horizon int) ForecastRepository {
	return &forecastRepository{
		conn:    conn,
		horizon: horizon,
	}
}

func (r *forecastRepository) Persist(ctx context.Context, batch *domain.ForecastBatch) error {
	if err := batch.Validate(r.horizon); err != nil {
		return err
	}

	trainedAt := batch.TrainedAt.UTC().Truncate(time.Microsecond)
	lastTrainingDate := utils.TruncateToDay(batch.LastTrainingDate)

	insert := squirrel.
		Insert(forecastsTableName).
		Columns(
			"model",
			"trained_at",
			"hyperparams",
			"n_training_days",
			"last_training_date",
			"forecast_date",
			"predicted_total_amount",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range batch.Points {
		insert = insert.Values(
			batch.Model,
			trainedAt,
			batch.Hyperparams,
			batch.WindowLength,
			lastTrainingDate,
			utils.TruncateToDay(p.ForecastDate),
			p.PredictedTotalAmount,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected != int64(len(batch.Points)) {
			return errors.Errorf("esperado %d linhas inseridas, obtido %d", len(batch.Points), affected)
		}

		return nil
	})
	if err != nil {
		return storeError("persistir lote de previsão", err)
	}

	return nil
}

func (r *forecastRepository) QueryLatest(ctx context.Context) (*domain.ForecastBatch, error) {
	query, args, err := squirrel.
		Select(forecastColumns...).
		From(forecastsTable).
		Where(latestBatchKey).
		OrderBy("f.model ASC", "f.forecast_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	batches, err := r.queryBatches(ctx, "consultar lote mais recente", query, args...)
	if err != nil {
		return nil, err
	}

	if len(batches) == 0 {
		return nil, domain.ErrNotFound
	}

	return batches[len(batches)-1], nil
}

func (r *forecastRepository) QueryAll(ctx context.Context) ([]*domain.ForecastBatch, error) {
	query, args, err := squirrel.
		Select(forecastColumns...).
		From(forecastsTable).
		OrderBy("f.last_training_date ASC", "f.trained_at ASC", "f.model ASC", "f.forecast_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.queryBatches(ctx, "consultar lotes de previsão", query, args...)
}

func (r *forecastRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT (f.model, f.trained_at, f.last_training_date))").
		From(forecastsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, storeError("contar lotes de previsão", err)
	}

	return count, nil
}

// queryBatches agrupa linhas consecutivas com a mesma chave
// (model, trained_at, last_training_date) em lotes. As linhas devem vir
// ordenadas pela chave, incluindo model, e depois por forecast_date.
func (r *forecastRepository) queryBatches(ctx context.Context, op, query string, args ...interface{}) ([]*domain.ForecastBatch, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	batches := make([]*domain.ForecastBatch, 0)
	var current *domain.ForecastBatch

	for rows.Next() {
		var row forecastRow
		if err := row.scan(rows); err != nil {
			return nil, storeError(op, err)
		}

		if current == nil || !row.sameBatch(current) {
			current = &domain.ForecastBatch{
				Model:            row.model,
				TrainedAt:        row.trainedAt.UTC(),
				Hyperparams:      row.hyperparams,
				WindowLength:     row.windowLength,
				LastTrainingDate: utils.TruncateToDay(row.lastTrainingDate),
				Points:           make([]domain.ForecastPoint, 0, r.horizon),
			}
			batches = append(batches, current)
		}

		current.Points = append(current.Points, domain.ForecastPoint{
			ForecastDate:         utils.TruncateToDay(row.forecastDate),
			PredictedTotalAmount: row.predicted,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}

	return batches, nil
}

type forecastRow struct {
	model            string
	trainedAt        time.Time
	hyperparams      string
	windowLength     int
	lastTrainingDate time.Time
	forecastDate     time.Time
	predicted        float64
}

func (fr *forecastRow) scan(rows *sql.Rows) error {
	return rows.Scan(
		&fr.model,
		&fr.trainedAt,
		&fr.hyperparams,
		&fr.windowLength,
		&fr.lastTrainingDate,
		&fr.forecastDate,
		&fr.predicted,
	)
}

func (fr *forecastRow) sameBatch(b *domain.ForecastBatch) bool {
	return fr.model == b.Model &&
		fr.trainedAt.UTC().Equal(b.TrainedAt) &&
		utils.SameDay(fr.lastTrainingDate, b.LastTrainingDate)
}
