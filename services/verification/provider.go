package verification

import (
	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"github.com/clipstream/otpkit/services/notify"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func NewProvider(cfg *config.Config, store Store, notifier notify.Notifier, logger *logging.Service) *Service {
	return NewService(cfg, store, nil, notifier, logger)
}

var Module = fx.Options(
	fx.Provide(NewProvider),
)

func ProvideMemoryStore() Store {
	return NewMemoryStore()
}

func ProvideGormStore(db *gorm.DB) Store {
	return NewGormStore(db)
}

func ProvideRedisStore(cfg *config.Config) Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return NewRedisStore(client)
}
