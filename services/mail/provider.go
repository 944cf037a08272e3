package mail

import (
	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"go.uber.org/fx"
)

func NewMailService(cfg *config.Config, logger *logging.Service) (*Service, error) {
	return NewService(&cfg.Mail, logger)
}

var Module = fx.Options(
	fx.Provide(NewMailService),
)
