package database

import (
	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func NewProvider(models ...any) fx.Option {
	return fx.Provide(func(cfg *config.Config, logger *logging.Service) (*gorm.DB, error) {
		return ProvideDatabase(*cfg, WithModels(models...), logger)
	})
}
