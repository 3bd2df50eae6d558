package handler

import (
	"net/http"

	"github.com/vfg2006/app-rank-navi-api/internal/api/handler/router"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/analyzing"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/ingesting"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/querying"
	"github.com/vfg2006/app-rank-navi-api/pkg/middleware"
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Rankings retorna as rotas de consulta e de ingestão manual de rankings
func Rankings(queryingService querying.QueryingService, ingestingService ingesting.IngestingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rankings",
			Method:  http.MethodGet,
			Handler: GetRankings(queryingService),
		},
		{
			Path:    "/v1/rankings/latest-date",
			Method:  http.MethodGet,
			Handler: GetLatestRankingDate(queryingService),
		},
		{
			Path:        "/v1/rankings/fetch",
			Method:      http.MethodPost,
			Handler:     FetchRanking(ingestingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/rankings/fetch-all",
			Method:      http.MethodPost,
			Handler:     FetchAllRankings(ingestingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Apps(service querying.QueryingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/search/apps",
			Method:  http.MethodGet,
			Handler: SearchApps(service),
		},
		{
			Path:    "/v1/apps/:id",
			Method:  http.MethodGet,
			Handler: GetApp(service),
		},
		{
			Path:    "/v1/apps/:id/history",
			Method:  http.MethodGet,
			Handler: GetAppHistory(service),
		},
	}
}

func Constants() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/constants",
			Method:  http.MethodGet,
			Handler: GetConstants(),
		},
	}
}

func Analysis(service analyzing.AnalyzingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis/trends",
			Method:      http.MethodPost,
			Handler:     AnalyzeTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
