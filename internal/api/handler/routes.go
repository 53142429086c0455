package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/clinic-admin-api/internal/api/handler/router"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/menuing"
	"github.com/vfg2006/clinic-admin-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// AdminMenu retorna as rotas da tela "Otras Configuraciones"
func AdminMenu(view menuing.MenuViewer) []router.Route {
	adminOnly := []router.Middleware{middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        AdminMenuPagePath,
			Method:      http.MethodGet,
			Handler:     GetAdminMenuPage(view),
			Middlewares: adminOnly,
		},
		{
			Path:        AdminMenuPath,
			Method:      http.MethodGet,
			Handler:     GetAdminMenu(view),
			Middlewares: adminOnly,
		},
		{
			Path:        AdminMenuEntriesPath,
			Method:      http.MethodGet,
			Handler:     ListAdminMenuEntries(view),
			Middlewares: adminOnly,
		},
		{
			Path:        AdminMenuActivatePath,
			Method:      http.MethodPost,
			Handler:     ActivateAdminMenuEntry(view),
			Middlewares: adminOnly,
		},
		{
			Path:        AdminMenuBackPath,
			Method:      http.MethodPost,
			Handler:     ActivateAdminMenuBack(view),
			Middlewares: adminOnly,
		},
	}
}
