package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecaster/internal/api/handler/router"
	"github.com/vfg2006/sales-forecaster/internal/usecases/merging"
	"github.com/vfg2006/sales-forecaster/internal/usecases/reporting"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Forecasts(store ForecastReader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecasts",
			Method:  http.MethodGet,
			Handler: ListForecasts(store),
		},
		{
			Path:    "/v1/forecasts/latest",
			Method:  http.MethodGet,
			Handler: GetLatestForecast(store),
		},
	}
}

func Dashboard(viewer merging.ForecastViewer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/forecast",
			Method:  http.MethodGet,
			Handler: GetDashboardForecast(viewer),
		},
	}
}

func Sales(service reporting.SalesReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/top",
			Method:  http.MethodGet,
			Handler: GetTopSales(service),
		},
		{
			Path:    "/v1/sales/recent",
			Method:  http.MethodGet,
			Handler: GetRecentSales(service),
		},
		{
			Path:    "/v1/sales/monthly-categories",
			Method:  http.MethodGet,
			Handler: GetMonthlyCategories(service),
		},
	}
}

func Scheduler(scheduler RetrainingScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scheduler/status",
			Method:  http.MethodGet,
			Handler: GetSchedulerStatus(scheduler),
		},
		{
			Path:    "/v1/scheduler/run",
			Method:  http.MethodPost,
			Handler: RunScheduler(scheduler),
		},
	}
}

func Metrics(h http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}
