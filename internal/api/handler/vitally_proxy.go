package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally"
	vitallydomain "github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally/domain"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ProxyErrorResponse struct {
	ProxyError string `json:"proxy_error"`
}

// GetVitallyAccount proxies a single account read to the Vitally API so the
// frontend never sees the server's API token. The upstream body is passed
// through untouched; upstream error statuses are forwarded.
func GetVitallyAccount(service vitally.Integrator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uuid := httprouter.ParamsFromContext(r.Context()).ByName("uuid")
		if uuid == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account UUID not provided", nil)
			return
		}

		if cfg.Vitally.APIToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingAPIToken, "Server missing API Token", nil)
			return
		}

		body, err := service.GetAccountRaw(uuid)
		if err != nil {
			writeProxyError(w, uuid, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

// writeProxyError forwards the upstream status where one exists, and answers
// 502 for transport-level failures.
func writeProxyError(w http.ResponseWriter, uuid string, err error) {
	logrus.WithFields(logrus.Fields{
		"account_uuid": uuid,
		"error":        err.Error(),
	}).Warn("vitally proxy request failed")

	status := http.StatusBadGateway

	switch {
	case errors.Is(err, vitallydomain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, vitallydomain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, vitallydomain.ErrMissingToken):
		status = http.StatusInternalServerError
	default:
		var upstreamErr *vitallydomain.UpstreamError
		if errors.As(err, &upstreamErr) {
			status = upstreamErr.StatusCode
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ProxyErrorResponse{ProxyError: err.Error()})
}
