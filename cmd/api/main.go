package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/vfg2006/heladeria-dashboard/infrastructure/repository"
	"github.com/vfg2006/heladeria-dashboard/internal/api"
	"github.com/vfg2006/heladeria-dashboard/internal/config"
	"github.com/vfg2006/heladeria-dashboard/internal/scheduler"
	"github.com/vfg2006/heladeria-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/heladeria-dashboard/internal/view/dashboard"
	"github.com/vfg2006/heladeria-dashboard/pkg/log"
)

const defaultLocale = "es-CL"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.Env); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure(logrus.InfoLevel.String(), cfg.App.Env)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dashboardRepo := repository.NewDashboardRepository(cfg.Dashboard.DataFile)

	reporter, err := reporting.NewService(dashboardRepo)
	if err != nil {
		logrus.WithError(err).WithField("source", dashboardRepo.Source()).Fatal("Erro ao carregar os dados do painel")
	}

	view, err := dashboard.New(dashboard.WithLocale(locale(cfg.Dashboard.Locale)))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a view do painel")
	}

	reloadService := scheduler.NewDashboardReloadService(reporter, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do painel")
	}

	server, err := api.New(cfg, reporter, view, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func locale(value string) language.Tag {
	tag, err := language.Parse(value)
	if err != nil {
		logrus.Warnf("Locale inválido: %s, usando '%s'", value, defaultLocale)
		return language.MustParse(defaultLocale)
	}
	return tag
}
