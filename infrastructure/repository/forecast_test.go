package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecaster/internal/domain"
)

func newMockConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewFromDB(db, time.Second), mock
}

func newBatch(lastTrainingDate, trainedAt time.Time, base float64) *domain.ForecastBatch {
	points := make([]domain.ForecastPoint, domain.ForecastHorizonDays)
	for i := range points {
		points[i] = domain.ForecastPoint{
			ForecastDate:         lastTrainingDate.AddDate(0, 0, i+1),
			PredictedTotalAmount: base + float64(i),
		}
	}

	return &domain.ForecastBatch{
		Model:            domain.DefaultModelName,
		TrainedAt:        trainedAt,
		Hyperparams:      domain.FormatHyperparams(3, 0, 0),
		WindowLength:     270,
		LastTrainingDate: lastTrainingDate,
		Points:           points,
	}
}

func batchRows(batches ...*domain.ForecastBatch) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"model", "trained_at", "hyperparams", "n_training_days",
		"last_training_date", "forecast_date", "predicted_total_amount",
	})
	for _, b := range batches {
		for _, p := range b.Points {
			rows.AddRow(b.Model, b.TrainedAt, b.Hyperparams, int64(b.WindowLength),
				b.LastTrainingDate, p.ForecastDate, p.PredictedTotalAmount)
		}
	}
	return rows
}

// latestBatchQuery casa o desempate do lote mais recente e a ordem dos pontos
var latestBatchQuery = regexp.QuoteMeta(
	"ORDER BY l.last_training_date DESC, l.trained_at DESC LIMIT 1) ORDER BY f.model ASC, f.forecast_date ASC",
)

// float4Points simula a leitura de uma coluna REAL
func float4Points(b *domain.ForecastBatch) *domain.ForecastBatch {
	read := *b
	read.Points = make([]domain.ForecastPoint, len(b.Points))
	for i, p := range b.Points {
		read.Points[i] = domain.ForecastPoint{
			ForecastDate:         p.ForecastDate,
			PredictedTotalAmount: float64(float32(p.PredictedTotalAmount)),
		}
	}
	return &read
}

func assertFloat4Equal(t *testing.T, expected, actual float64) {
	t.Helper()
	assert.Equal(t, float32(expected), float32(actual))
}

func TestForecastRepository_Persist(t *testing.T) {
	lastDate := time.Date(2024, 9, 27, 0, 0, 0, 0, time.UTC)
	trainedAt := time.Date(2024, 9, 28, 1, 30, 0, 0, time.UTC)

	t.Run("grava todos os pontos numa transação", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO forecasts").
			WillReturnResult(sqlmock.NewResult(0, domain.ForecastHorizonDays))
		mock.ExpectCommit()

		err := repo.Persist(context.Background(), newBatch(lastDate, trainedAt, 100))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("desfaz a transação quando nem todas as linhas foram gravadas", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO forecasts").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectRollback()

		err := repo.Persist(context.Background(), newBatch(lastDate, trainedAt, 100))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrTransientStore))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha de escrita é transitória e desfaz a transação", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO forecasts").
			WillReturnError(&pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"})
		mock.ExpectRollback()

		err := repo.Persist(context.Background(), newBatch(lastDate, trainedAt, 100))
		require.Error(t, err)

		var storeErr *domain.TransientStoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "57014", storeErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lote inválido não chega ao banco", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		batch := newBatch(lastDate, trainedAt, 100)
		batch.Points = batch.Points[:6]

		err := repo.Persist(context.Background(), batch)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidBatch))
		assert.False(t, errors.Is(err, domain.ErrTransientStore))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestForecastRepository_QueryLatest(t *testing.T) {
	lastDate := time.Date(2024, 9, 27, 0, 0, 0, 0, time.UTC)
	trainedAt := time.Date(2024, 9, 28, 1, 30, 0, 0, time.UTC)

	t.Run("retorna os pontos persistidos em ordem crescente", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		persisted := newBatch(lastDate, trainedAt, 250.5)
		mock.ExpectQuery(latestBatchQuery).WillReturnRows(batchRows(persisted))

		latest, err := repo.QueryLatest(context.Background())
		require.NoError(t, err)
		require.NotNil(t, latest)

		assert.Equal(t, persisted.Model, latest.Model)
		assert.True(t, persisted.TrainedAt.Equal(latest.TrainedAt))
		assert.True(t, persisted.LastTrainingDate.Equal(latest.LastTrainingDate))
		assert.Equal(t, persisted.WindowLength, latest.WindowLength)
		require.Len(t, latest.Points, domain.ForecastHorizonDays)
		for i, p := range latest.Points {
			assert.True(t, persisted.Points[i].ForecastDate.Equal(p.ForecastDate))
			assert.Equal(t, persisted.Points[i].PredictedTotalAmount, p.PredictedTotalAmount)
		}
		assert.NoError(t, latest.Validate(domain.ForecastHorizonDays))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empate em last_training_date fica com o maior trained_at", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		earlier := newBatch(lastDate, trainedAt, 100)
		later := newBatch(lastDate, trainedAt.Add(time.Hour), 200)
		require.True(t, earlier.LastTrainingDate.Equal(later.LastTrainingDate))

		// O banco devolve apenas as linhas da chave escolhida pela subconsulta
		mock.ExpectQuery(latestBatchQuery).WillReturnRows(batchRows(later))

		latest, err := repo.QueryLatest(context.Background())
		require.NoError(t, err)

		assert.True(t, later.TrainedAt.Equal(latest.TrainedAt))
		assert.Equal(t, later.Points[0].PredictedTotalAmount, latest.Points[0].PredictedTotalAmount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("valores lidos da coluna REAL preservam precisão de float32", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		persisted := newBatch(lastDate, trainedAt, 1234.5678901)
		mock.ExpectQuery(latestBatchQuery).WillReturnRows(batchRows(float4Points(persisted)))

		latest, err := repo.QueryLatest(context.Background())
		require.NoError(t, err)
		require.Len(t, latest.Points, domain.ForecastHorizonDays)

		for i, p := range latest.Points {
			assertFloat4Equal(t, persisted.Points[i].PredictedTotalAmount, p.PredictedTotalAmount)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("armazenamento vazio retorna ErrNotFound", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		mock.ExpectQuery("FROM forecasts f WHERE").WillReturnRows(batchRows())

		latest, err := repo.QueryLatest(context.Background())
		assert.Nil(t, latest)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha de conexão é transitória", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

		mock.ExpectQuery("FROM forecasts f WHERE").WillReturnError(errors.New("connection refused"))

		_, err := repo.QueryLatest(context.Background())
		assert.True(t, errors.Is(err, domain.ErrTransientStore))
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestForecastRepository_QueryAll(t *testing.T) {
	first := newBatch(time.Date(2024, 9, 26, 0, 0, 0, 0, time.UTC), time.Date(2024, 9, 27, 1, 0, 0, 0, time.UTC), 10)
	second := newBatch(time.Date(2024, 9, 27, 0, 0, 0, 0, time.UTC), time.Date(2024, 9, 28, 1, 0, 0, 0, time.UTC), 20)
	// Mesmo last_training_date, treino posterior
	third := newBatch(time.Date(2024, 9, 27, 0, 0, 0, 0, time.UTC), time.Date(2024, 9, 28, 2, 0, 0, 0, time.UTC), 30)

	conn, mock := newMockConn(t)
	repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY f.last_training_date ASC, f.trained_at ASC, f.model ASC, f.forecast_date ASC")).
		WillReturnRows(batchRows(first, second, third))

	batches, err := repo.QueryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, batches, 3)

	for i, expected := range []*domain.ForecastBatch{first, second, third} {
		assert.True(t, expected.TrainedAt.Equal(batches[i].TrainedAt))
		assert.Len(t, batches[i].Points, domain.ForecastHorizonDays)
		assert.Equal(t, expected.Points[0].PredictedTotalAmount, batches[i].Points[0].PredictedTotalAmount)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForecastRepository_Count(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForecastRepository_QueryAll_SeparatesModels(t *testing.T) {
	lastDate := time.Date(2024, 9, 27, 0, 0, 0, 0, time.UTC)
	trainedAt := time.Date(2024, 9, 28, 1, 0, 0, 0, time.UTC)

	arima := newBatch(lastDate, trainedAt, 10)
	other := newBatch(lastDate, trainedAt, 50)
	other.Model = "AR_BASELINE"

	conn, mock := newMockConn(t)
	repo := NewForecastRepository(conn, domain.ForecastHorizonDays)

	// Mesma chave de tempo, linhas agrupadas por model
	mock.ExpectQuery("FROM forecasts f ORDER BY").WillReturnRows(batchRows(other, arima))

	batches, err := repo.QueryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, batches, 2)

	assert.Equal(t, "AR_BASELINE", batches[0].Model)
	assert.Equal(t, domain.DefaultModelName, batches[1].Model)
	for _, b := range batches {
		assert.NoError(t, b.Validate(domain.ForecastHorizonDays))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
