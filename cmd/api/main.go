package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-admin-api/internal/api"
	"github.com/vfg2006/clinic-admin-api/internal/api/handler"
	"github.com/vfg2006/clinic-admin-api/internal/config"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/menuing"
	"github.com/vfg2006/clinic-admin-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.SetEnvironment(cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	menuView, err := menuing.NewAdminMenuView(
		handler.NewHTTPNavigator(),
		menuing.WithDashboardRoute(cfg.Menu.DashboardRoute),
		menuing.WithEntryRoutes(cfg.Menu.EntryRoutes),
	)
	if err != nil {
		entry := logrus.WithError(err)
		var menuErr *menuing.MenuError
		if errors.As(err, &menuErr) {
			entry = entry.WithFields(logrus.Fields{"code": menuErr.Code, "entry": menuErr.EntryKey})
		}
		entry.Fatal("Configuração do menu administrativo inválida")
	}

	if len(cfg.Menu.EntryRoutes) == 0 {
		logrus.Warn("Nenhum card do menu administrativo possui rota de destino (MENU_ENTRY_ROUTES vazio)")
	}

	server, err := api.New(cfg, menuView, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
