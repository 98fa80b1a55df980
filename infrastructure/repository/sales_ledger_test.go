package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesLedgerRepository_GetLatestDate(t *testing.T) {
	t.Run("normaliza para o dia", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewSalesLedgerRepository(conn)

		mock.ExpectQuery("SELECT MAX\\(s.date\\) FROM sales_db s").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(time.Date(2024, 9, 27, 15, 4, 5, 0, time.UTC)))

		latest, err := repo.GetLatestDate(context.Background())
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, time.Date(2024, 9, 27, 0, 0, 0, 0, time.UTC), *latest)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("livro-razão vazio retorna nil", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewSalesLedgerRepository(conn)

		mock.ExpectQuery("FROM sales_db s").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

		latest, err := repo.GetLatestDate(context.Background())
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

func TestSalesLedgerRepository_GetDailyTotals(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSalesLedgerRepository(conn)

	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM sales_db s WHERE s.date >= \\$1 AND s.date < \\$2 GROUP BY day ORDER BY day ASC").
		WithArgs(start, time.Date(2024, 9, 4, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"day", "total_amount"}).
			AddRow(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), 120.5).
			AddRow(time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC), 80.0))

	totals, err := repo.GetDailyTotals(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, 120.5, totals[0].TotalAmount)
	assert.Equal(t, time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC), totals[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesLedgerRepository_GetTopSales(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSalesLedgerRepository(conn)

	mock.ExpectQuery("FROM sales_db s ORDER BY s.total_amount DESC LIMIT 5").
		WillReturnRows(sqlmock.NewRows([]string{
			"date", "customer_id", "gender", "age", "product_category", "quantity", "price_per_unit", "total_amount",
		}).AddRow(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "CUST001", int64(1), int64(34), "Electronics", 2.0, 500.0, 1000.0))

	sales, err := repo.GetTopSales(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "CUST001", sales[0].CustomerID)
	assert.Equal(t, int16(1), sales[0].Gender)
	assert.Equal(t, 1000.0, sales[0].TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesLedgerRepository_GetRecentSales_ZeroLimit(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSalesLedgerRepository(conn)

	sales, err := repo.GetRecentSales(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesLedgerRepository_GetMonthlyCategoryTotals(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSalesLedgerRepository(conn)

	mock.ExpectQuery("GROUP BY month, s.product_category").
		WillReturnRows(sqlmock.NewRows([]string{"month", "product_category", "total_amount"}).
			AddRow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Beauty", 300.0).
			AddRow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Clothing", 150.0))

	totals, err := repo.GetMonthlyCategoryTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "Clothing", totals[1].ProductCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}
