package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/frontrow-invoice-api/internal/api/handler/router"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/dashboarding"
	"github.com/vfg2006/frontrow-invoice-api/internal/usecases/exporting"
	"github.com/vfg2006/frontrow-invoice-api/pkg/middleware"
)

// maxUpdateBodyBytes limita o corpo da edição de loja
const maxUpdateBodyBytes = 16 << 10

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Stores(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodGet,
			Handler: GetStore(service),
		},
		{
			Path:        "/v1/stores/:id",
			Method:      http.MethodPut,
			Handler:     UpdateStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LimitBody(maxUpdateBodyBytes)},
		},
	}
}

func StoreMetrics(service dashboarding.Dashboarder, lookbackDays int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/global",
			Method:  http.MethodGet,
			Handler: GetGlobalMetrics(service),
		},
		{
			Path:    "/v1/metrics/refresh",
			Method:  http.MethodPost,
			Handler: RefreshMetrics(service, lookbackDays),
		},
	}
}

func Export(exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export/csv",
			Method:  http.MethodGet,
			Handler: ExportStores(exporter, exporting.FormatCSV),
		},
		{
			Path:    "/v1/export/report",
			Method:  http.MethodGet,
			Handler: ExportStores(exporter, exporting.FormatReport),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Prometheus(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}
