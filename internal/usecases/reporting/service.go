package reporting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-forecaster/infrastructure/repository"
	"github.com/vfg2006/sales-forecaster/internal/config"
	"github.com/vfg2006/sales-forecaster/internal/domain"
)

// MaxLimit limita o tamanho das listagens de vendas
const MaxLimit = 100

type SalesReporter interface {
	GetTopSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error)
	GetRecentSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error)
	GetMonthlyCategories(ctx context.Context) ([]*domain.MonthlyCategoryReport, error)
}

type SalesReportService struct {
	ledgerRepo       repository.SalesLedgerRepository
	topSalesLimit    int
	recentSalesLimit int
}

func NewSalesReportService(ledgerRepo repository.SalesLedgerRepository, cfg config.Dashboard) SalesReporter {
	return &SalesReportService{
		ledgerRepo:       ledgerRepo,
		topSalesLimit:    cfg.TopSalesLimit,
		recentSalesLimit: cfg.RecentSalesLimit,
	}
}

func (s *SalesReportService) GetTopSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error) {
	return s.ledgerRepo.GetTopSales(ctx, clampLimit(limit, s.topSalesLimit))
}

func (s *SalesReportService) GetRecentSales(ctx context.Context, limit int) ([]*domain.SalesRecord, error) {
	return s.ledgerRepo.GetRecentSales(ctx, clampLimit(limit, s.recentSalesLimit))
}

// GetMonthlyCategories agrupa os totais por mês, na ordem retornada pelo banco
func (s *SalesReportService) GetMonthlyCategories(ctx context.Context) ([]*domain.MonthlyCategoryReport, error) {
	totals, err := s.ledgerRepo.GetMonthlyCategoryTotals(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]*domain.MonthlyCategoryReport, 0)
	var current *domain.MonthlyCategoryReport

	for _, t := range totals {
		month := t.Month.Format("2006-01")
		if current == nil || current.Month != month {
			current = &domain.MonthlyCategoryReport{
				Month:      month,
				Categories: make(map[string]float64),
			}
			reports = append(reports, current)
		}
		current.Categories[t.ProductCategory] += t.TotalAmount
		current.TotalAmount += t.TotalAmount
	}

	return reports, nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
