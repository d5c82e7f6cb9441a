package main

import (
	"context"
	"time"

	"github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally"
	"github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally/vitallyclient"
	"github.com/mykaarma/cem-portal-api/infrastructure/sso"
	"github.com/mykaarma/cem-portal-api/internal/api"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/usecases/authenticating"
	"github.com/mykaarma/cem-portal-api/internal/usecases/coaching"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if cfg.Vitally.APIToken == "" {
		logrus.Warn("VITALLY_API_TOKEN not configured; account reads will fail until it is set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	vitallyClient := vitallyclient.NewClient(cfg)
	vitallyIntegrator := vitally.New(cfg, vitallyClient)

	coachService := coaching.NewService(cfg, vitallyIntegrator)

	ssoProvider := ssoProvider(cfg)

	server, err := api.New(
		cfg,
		coachService,
		vitallyIntegrator,
		authenticator,
		ssoProvider,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// ssoProvider initializes the SAML service provider when an IdP is
// configured. The portal still serves the proxy and coach APIs without it,
// which keeps local development independent of the accounts IdP.
func ssoProvider(cfg *config.Config) *sso.Provider {
	if cfg.SAML.IDPMetadataURL == "" {
		logrus.Warn("SAML_IDP_METADATA_URL not configured; single sign-on disabled")
		return nil
	}

	provider, err := sso.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("error initializing SAML service provider")
	}

	return provider
}
