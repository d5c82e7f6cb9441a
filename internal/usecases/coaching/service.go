package coaching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally"
	vitallydomain "github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally/domain"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Coacher generates dealer performance reviews. Every failure path terminates
// in a rendered markdown document, never an error: the portal always has
// something to show the coach.
type Coacher interface {
	GenerateReview(accountUUID, dealerName, userName string) string
}

type Service struct {
	cfg            *config.Config
	vitallyService vitally.Integrator
	now            func() time.Time
}

func NewService(cfg *config.Config, vitallyService vitally.Integrator) Coacher {
	return &Service{
		cfg:            cfg,
		vitallyService: vitallyService,
		now:            time.Now,
	}
}

func (s *Service) GenerateReview(accountUUID, dealerName, userName string) string {
	account, err := s.vitallyService.GetAccount(accountUUID)
	if err != nil {
		return s.reviewFromError(err, accountUUID, dealerName, userName)
	}

	source := account.KPISource()

	// Diagnostic listing of the fields the store actually exposes; surfaces
	// in the report only when the KPI mapping comes up empty.
	debugInfo := availableFields(source)

	kpis := resolveKPIs(source)

	displayName := account.Name
	if displayName == "" {
		displayName = dealerName
	}

	logrus.WithFields(logrus.Fields{
		"account_uuid": accountUUID,
		"dealer_name":  displayName,
	}).Debug("coaching: review generated")

	return formatReviewMarkdown(displayName, userName, kpis, debugInfo, s.now())
}

// reviewFromError translates upstream failures into user-facing markdown.
// 401 and 404 get fixed messages; anything else becomes a best-effort report
// with no KPI data and a technical diagnostic.
func (s *Service) reviewFromError(err error, accountUUID, dealerName, userName string) string {
	switch {
	case errors.Is(err, vitallydomain.ErrUnauthorized):
		return "### Error: Unauthorized\n\nThe server's Vitally API Token is invalid. Please check settings."

	case errors.Is(err, vitallydomain.ErrNotFound):
		return fmt.Sprintf("### Error: Dealership Not Found\n\nNo Vitally account matches UUID: `%s` for **%s**.", accountUUID, dealerName)

	default:
		logrus.WithFields(logrus.Fields{
			"account_uuid": accountUUID,
			"error":        err.Error(),
		}).Error("coaching: failed to fetch vitally account")

		return formatReviewMarkdown(dealerName, userName, nil, "Technical error: "+err.Error(), s.now())
	}
}

// availableFields lists up to 30 of the payload's keys, skipping the very long
// machine identifiers. Keys are sorted so the report is deterministic.
func availableFields(source map[string]any) string {
	keys := make([]string, 0, len(source))
	for key := range source {
		if len(key) < 60 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if len(keys) > 30 {
		keys = keys[:30]
	}

	return fmt.Sprintf("Available fields: %s...", strings.Join(keys, ", "))
}
