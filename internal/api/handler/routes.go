package handler

import (
	"net/http"

	"github.com/kpiboard/metrics-dashboard-api/internal/api/handler/router"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/authenticating"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/entries"
	"github.com/kpiboard/metrics-dashboard-api/internal/usecases/registry"
	"github.com/kpiboard/metrics-dashboard-api/internal/watch"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

// Metrics retorna as rotas do registro de métricas. A reordenação dos cards
// é um PUT na coleção, com a lista completa de ids na ordem desejada.
func Metrics(registryService registry.MetricRegistry, entryService entries.EntryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: ListMetrics(registryService),
		},
		{
			Path:    "/v1/metrics",
			Method:  http.MethodPost,
			Handler: AddMetric(registryService),
		},
		{
			Path:    "/v1/metrics",
			Method:  http.MethodPut,
			Handler: ReorderMetrics(registryService),
		},
		{
			Path:    "/v1/metrics/:id",
			Method:  http.MethodPut,
			Handler: UpdateMetric(registryService),
		},
		{
			Path:    "/v1/metrics/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMetric(registryService),
		},
		{
			Path:    "/v1/metrics/:id/goal",
			Method:  http.MethodPut,
			Handler: SetMetricGoal(registryService),
		},
		{
			Path:    "/v1/metrics/:id/values",
			Method:  http.MethodPut,
			Handler: SaveCustomValue(entryService),
		},
	}
}

func MonthlyEntries(service entries.EntryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/entries",
			Method:  http.MethodGet,
			Handler: ListEntries(service),
		},
		{
			Path:    "/v1/entries",
			Method:  http.MethodPost,
			Handler: CreateEntry(service),
		},
		{
			Path:    "/v1/entries",
			Method:  http.MethodPut,
			Handler: SaveEntry(service),
		},
		{
			Path:    "/v1/entries/:id",
			Method:  http.MethodDelete,
			Handler: DeleteEntry(service),
		},
	}
}

func Settings(service registry.MetricRegistry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings/data",
			Method:  http.MethodDelete,
			Handler: DeleteAllData(service),
		},
	}
}

func Stream(hub *watch.Hub, registryService registry.MetricRegistry, entryService entries.EntryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stream",
			Method:  http.MethodGet,
			Handler: StreamDashboard(hub, registryService, entryService),
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
