package repository

//go:generate mockgen -source=sales_ledger.go -destination=mocks/sales_ledger.go -package=mocks

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
	salesLedgerTable = "sales_db s"
)

var salesRecordColumns = []string{
	"s.date",
	"s.customer_id",
	"s.gender",
	"s.age",
	"s.product_category",
	"s.quantity",
	"s.price_per_unit",
	"s.total_amount",
}

// SalesLedgerRepository é a leitura do livro-razão de vendas. A escrita
// pertence aos carregadores externos.
type SalesLedgerRepository interface {
	// GetLatestDate retorna a maior data do livro-razão, ou nil se vazio
	GetLatestDate(ctx context.Context) (*time.Time, error)
	// GetDailyTotals soma total_amount por dia no intervalo fechado [start, end]
	GetDailyTotals(ctx context.Context, start, end time.Time) ([]domain.DailyTotal, error)
	GetTopSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error)
	GetRecentSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error)
	GetMonthlyCategoryTotals(ctx context.Context) ([]domain.CategoryMonthlyTotal, error)
}

type salesLedgerRepository struct {
	conn postgres.Conn
}

func NewSalesLedgerRepository(conn postgres.Conn) SalesLedgerRepository {
	return &salesLedgerRepository{
		conn: conn,
	}
}

func (r *salesLedgerRepository) GetLatestDate(ctx context.Context) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(s.date)").
		From(salesLedgerTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	var latest sql.NullTime
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return nil, storeError("ler data mais recente do livro-razão", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	date := utils.TruncateToDay(latest.Time)
	return &date, nil
}

func (r *salesLedgerRepository) GetDailyTotals(ctx context.Context, start, end time.Time) ([]domain.DailyTotal, error) {
	query, args, err := squirrel.
		Select("DATE_TRUNC('day', s.date) AS day", "SUM(s.total_amount) AS total_amount").
		From(salesLedgerTable).
		Where(squirrel.GtOrEq{"s.date": utils.TruncateToDay(start)}).
		Where(squirrel.Lt{"s.date": utils.NextDay(end)}).
		GroupBy("day").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("agregar vendas diárias", err)
	}
	defer rows.Close()

	totals := make([]domain.DailyTotal, 0)
	for rows.Next() {
		var day time.Time
		var amount sql.NullFloat64
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, storeError("escanear vendas diárias", err)
		}
		totals = append(totals, domain.DailyTotal{
			Date:        utils.TruncateToDay(day),
			TotalAmount: amount.Float64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterar vendas diárias", err)
	}

	return totals, nil
}

func (r *salesLedgerRepository) GetTopSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error) {
	return r.listSales(ctx, "s.total_amount DESC", limit)
}

func (r *salesLedgerRepository) GetRecentSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error) {
	return r.listSales(ctx, "s.date DESC", limit)
}

func (r *salesLedgerRepository) listSales(ctx context.Context, orderBy string, limit int) ([]*domain.SalesRecord, error) {
	if limit <= 0 {
		return []*domain.SalesRecord{}, nil
	}

	query, args, err := squirrel.
		Select(salesRecordColumns...).
		From(salesLedgerTable).
		OrderBy(orderBy).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("listar vendas", err)
	}
	defer rows.Close()

	sales := make([]*domain.SalesRecord, 0, limit)
	for rows.Next() {
		sale := &domain.SalesRecord{}
		err := rows.Scan(
			&sale.Date,
			&sale.CustomerID,
			&sale.Gender,
			&sale.Age,
			&sale.ProductCategory,
			&sale.Quantity,
			&sale.PricePerUnit,
			&sale.TotalAmount,
		)
		if err != nil {
			return nil, storeError("escanear venda", err)
		}
		sale.Date = utils.TruncateToDay(sale.Date)
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterar vendas", err)
	}

	return sales, nil
}

func (r *salesLedgerRepository) GetMonthlyCategoryTotals(ctx context.Context) ([]domain.CategoryMonthlyTotal, error) {
	query, args, err := squirrel.
		Select(
			"DATE_TRUNC('month', s.date) AS month",
			"s.product_category",
			"SUM(s.total_amount) AS total_amount",
		).
		From(salesLedgerTable).
		GroupBy("month", "s.product_category").
		OrderBy("month ASC", "s.product_category ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("agregar vendas mensais por categoria", err)
	}
	defer rows.Close()

	totals := make([]domain.CategoryMonthlyTotal, 0)
	for rows.Next() {
		var item domain.CategoryMonthlyTotal
		if err := rows.Scan(&item.Month, &item.ProductCategory, &item.TotalAmount); err != nil {
			return nil, storeError("escanear vendas mensais", err)
		}
		item.Month = utils.TruncateToDay(item.Month)
		totals = append(totals, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterar vendas mensais", err)
	}

	return totals, nil
}
