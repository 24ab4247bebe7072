package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/internal/api/handler"
	"github.com/vfg2006/marketplace-reports-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-reports-api/internal/config"
	"github.com/vfg2006/marketplace-reports-api/internal/scheduler"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/registry"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/marketplace-reports-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	jobQueue   *scheduler.JobQueue
}

func New(
	config *config.Config,
	reportService reporting.ReportService,
	registryService registry.RegistryService,
	authenticator authenticating.Authenticator,
	jobQueue *scheduler.JobQueue,
	cleanupService *scheduler.ScratchCleanupService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(jobQueue, cleanupService)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.Shops(registryService)...),
		router.WithNotFound(handler.NotFound()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		jobQueue: jobQueue,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para de aceitar requisições e espera os jobs em andamento até o prazo do ctx
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	if s.jobQueue == nil {
		return nil
	}

	if err := s.jobQueue.Shutdown(ctx); err != nil {
		logrus.WithFields(logrus.Fields{
			"jobs": s.jobQueue.GetStatus(),
		}).Warn("Jobs ainda em execução no desligamento")
		return err
	}

	logrus.Info("Fila de jobs encerrada")
	return nil
}
