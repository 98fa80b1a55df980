package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecaster/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-forecaster/internal/config"
	"github.com/vfg2006/sales-forecaster/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (SalesReporter, *mocks.MockSalesLedgerRepository) {
	ctrl := gomock.NewController(t)
	ledgerRepo := mocks.NewMockSalesLedgerRepository(ctrl)
	return NewSalesReportService(ledgerRepo, config.Dashboard{TopSalesLimit: 5, RecentSalesLimit: 10}), ledgerRepo
}

func TestSalesReportService_Limits(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		wantTop    int
		wantRecent int
	}{
		{name: "limite padrão", requested: 0, wantTop: 5, wantRecent: 10},
		{name: "limite negativo usa o padrão", requested: -3, wantTop: 5, wantRecent: 10},
		{name: "limite informado", requested: 20, wantTop: 20, wantRecent: 20},
		{name: "limite acima do máximo", requested: 1000, wantTop: MaxLimit, wantRecent: MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, ledgerRepo := newTestService(t)

			ledgerRepo.EXPECT().GetTopSales(gomock.Any(), tt.wantTop).Return([]*domain.SalesRecord{}, nil)
			ledgerRepo.EXPECT().GetRecentSales(gomock.Any(), tt.wantRecent).Return([]*domain.SalesRecord{}, nil)

			_, err := service.GetTopSales(context.Background(), tt.requested)
			require.NoError(t, err)
			_, err = service.GetRecentSales(context.Background(), tt.requested)
			require.NoError(t, err)
		})
	}
}

func TestSalesReportService_GetMonthlyCategories(t *testing.T) {
	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("agrupa categorias por mês", func(t *testing.T) {
		service, ledgerRepo := newTestService(t)

		ledgerRepo.EXPECT().GetMonthlyCategoryTotals(gomock.Any()).Return([]domain.CategoryMonthlyTotal{
			{Month: jan, ProductCategory: "Beauty", TotalAmount: 100},
			{Month: jan, ProductCategory: "Clothing", TotalAmount: 250},
			{Month: feb, ProductCategory: "Electronics", TotalAmount: 900},
		}, nil)

		reports, err := service.GetMonthlyCategories(context.Background())

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "2023-01", reports[0].Month)
		assert.Equal(t, 350.0, reports[0].TotalAmount)
		assert.Equal(t, 250.0, reports[0].Categories["Clothing"])
		assert.Equal(t, "2023-02", reports[1].Month)
		assert.Equal(t, map[string]float64{"Electronics": 900}, reports[1].Categories)
	})

	t.Run("sem vendas", func(t *testing.T) {
		service, ledgerRepo := newTestService(t)

		ledgerRepo.EXPECT().GetMonthlyCategoryTotals(gomock.Any()).Return([]domain.CategoryMonthlyTotal{}, nil)

		reports, err := service.GetMonthlyCategories(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, reports)
		assert.Empty(t, reports)
	})

	t.Run("erro do repositório", func(t *testing.T) {
		service, ledgerRepo := newTestService(t)

		ledgerRepo.EXPECT().GetMonthlyCategoryTotals(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := service.GetMonthlyCategories(context.Background())

		assert.Error(t, err)
	})
}
