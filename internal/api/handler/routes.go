package handler

import (
	"net/http"

	"github.com/vfg2006/marketplace-reports-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/registry"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/marketplace-reports-api/pkg/middleware"
)

func Healthcheck(jobs StatusProvider, cleanup StatusProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(jobs, cleanup),
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
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: StartReport(service),
		},
		{
			Path:    "/v1/reports/direct",
			Method:  http.MethodPost,
			Handler: StartDirectReport(service),
		},
	}
}

func Shops(service registry.RegistryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/shops",
			Method:      http.MethodGet,
			Handler:     ListShops(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/shops",
			Method:      http.MethodPut,
			Handler:     UpsertShop(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
