package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/heladeria-dashboard/internal/api/handler"
	"github.com/vfg2006/heladeria-dashboard/internal/api/handler/router"
	"github.com/vfg2006/heladeria-dashboard/internal/config"
	"github.com/vfg2006/heladeria-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/heladeria-dashboard/internal/view/dashboard"
	"github.com/vfg2006/heladeria-dashboard/pkg/middleware"
	"github.com/vfg2006/heladeria-dashboard/pkg/utils"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	instanceID string
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	view dashboard.Renderer,
	reloader handler.DashboardReloader,
) (*Server, error) {
	instanceID, err := utils.GenerateInstanceID()
	if err != nil {
		return nil, err
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(instanceID)...),
		router.WithRoutes(handler.Dashboard(reporter, view, reloader)...),
	}
	if config.Metrics.Enabled {
		routes = append(routes, router.WithRoutes(handler.Metrics(config.Metrics.Path)...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Address(),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		instanceID: instanceID,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address":     s.httpServer.Addr,
			"instance_id": s.instanceID,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
