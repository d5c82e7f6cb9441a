package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type HealthResponse struct {
	Status  string `json:"status"`
	Vitally bool   `json:"vitally"`
}

// HealthcheckHandler reports liveness plus whether the upstream Vitally token
// is configured, so a misdeployed environment is visible at a glance.
func HealthcheckHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(HealthResponse{
			Status:  "healthy",
			Vitally: cfg.Vitally.APIToken != "",
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
