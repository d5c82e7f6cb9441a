package vitally

import (
	vitallydomain "github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally/domain"
	"github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally/vitallyclient"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/sirupsen/logrus"
)

type Integrator interface {
	GetAccount(uuid string) (*vitallydomain.Account, error)
	GetAccountRaw(uuid string) ([]byte, error)
}

type VitallyService struct {
	cfg    *config.Config
	Client vitallyclient.Client
}

func New(cfg *config.Config, client vitallyclient.Client) Integrator {
	return &VitallyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *VitallyService) GetAccount(uuid string) (*vitallydomain.Account, error) {
	account, err := s.Client.GetAccount(uuid)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_uuid": uuid,
			"error":        err.Error(),
		}).Warn("vitally: failed to get account")
		return nil, err
	}

	return account, nil
}

func (s *VitallyService) GetAccountRaw(uuid string) ([]byte, error) {
	return s.Client.GetAccountRaw(uuid)
}
