package handler

import (
	"net/http"

	"github.com/mykaarma/cem-portal-api/internal/usecases/coaching"
	"github.com/mykaarma/cem-portal-api/pkg/apiErrors"
	"github.com/mykaarma/cem-portal-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type ReviewRequest struct {
	AccountID  string `json:"account_id"`
	DealerName string `json:"dealer_name"`
	UserName   string `json:"user_name"`
}

type ReviewResponse struct {
	Markdown string `json:"markdown"`
}

// GenerateReview produces a coaching report for one dealership. The operator
// name defaults to the signed-in user; the request may override it when a
// coach prepares a review on a colleague's behalf.
func GenerateReview(service coaching.Coacher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		if req.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id is required", nil)
			return
		}

		userName := req.UserName
		if userName == "" {
			if claims, ok := middleware.ClaimsFromRequest(r); ok {
				userName = claims.Identity().FullName()
			}
		}

		markdown := service.GenerateReview(req.AccountID, req.DealerName, userName)

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(ReviewResponse{Markdown: markdown})
		if err != nil {
			logrus.WithError(err).Error("error sending review response")
		}
	}
}
