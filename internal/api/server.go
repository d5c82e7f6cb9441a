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
	"github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally"
	"github.com/mykaarma/cem-portal-api/infrastructure/sso"
	"github.com/mykaarma/cem-portal-api/internal/api/handler"
	"github.com/mykaarma/cem-portal-api/internal/api/handler/router"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/usecases/authenticating"
	"github.com/mykaarma/cem-portal-api/internal/usecases/coaching"
	"github.com/mykaarma/cem-portal-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	coachService coaching.Coacher,
	vitallyService vitally.Integrator,
	authenticator authenticating.Authenticator,
	ssoProvider *sso.Provider,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(config)...),
		router.WithRoutes(handler.Authentication(ssoProvider, authenticator, config)...),
		router.WithRoutes(handler.VitallyProxy(vitallyService, config)...),
		router.WithRoutes(handler.Coach(coachService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.SecurityHeaders(),
		middleware.Session(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful server shutdown")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}
