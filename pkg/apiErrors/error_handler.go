package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the portal frontend.
const (
	// Authentication errors
	ErrInvalidToken   = "AUTH_001" // Session token invalid
	ErrExpiredToken   = "AUTH_002" // Session token expired
	ErrNotAuthorized  = "AUTH_003" // No session on a protected route
	ErrSSODisabled    = "AUTH_004" // SAML provider not configured
	ErrSSOFailed      = "AUTH_005" // SAML assertion rejected
	ErrLogoutFailed   = "AUTH_006" // Single-logout request could not be built

	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data absent

	// Server errors
	ErrInternalServer  = "SRV_001" // Internal server error
	ErrMissingAPIToken = "SRV_002" // Upstream Vitally token not configured
	ErrExternalService = "SRV_003" // Upstream service failure
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrNotAuthorized:       http.StatusUnauthorized,
	ErrSSODisabled:         http.StatusServiceUnavailable,
	ErrSSOFailed:           http.StatusUnauthorized,
	ErrLogoutFailed:        http.StatusInternalServerError,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrMissingAPIToken:     http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
