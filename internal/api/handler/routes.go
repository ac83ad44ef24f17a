package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/heladeria-dashboard/internal/api/handler/router"
	"github.com/vfg2006/heladeria-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/heladeria-dashboard/internal/view/dashboard"
)

func Healthcheck(instanceID string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(instanceID),
		},
	}
}

func Dashboard(reporter reporting.Reporter, view dashboard.Renderer, reloader DashboardReloader) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(reporter, view),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardData(reporter),
		},
		{
			Path:    "/v1/dashboard/view",
			Method:  http.MethodGet,
			Handler: GetDashboardView(reporter, view),
		},
		{
			Path:    "/v1/dashboard/reload",
			Method:  http.MethodPost,
			Handler: ReloadDashboard(reloader, reporter),
		},
		{
			Path:    "/v1/dashboard/status",
			Method:  http.MethodGet,
			Handler: GetDashboardStatus(reloader, reporter),
		},
	}
}

// Metrics expõe as métricas do Prometheus no caminho configurado
func Metrics(path string) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
