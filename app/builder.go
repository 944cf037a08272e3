package app

import (
	"fmt"

	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/database"
	"github.com/clipstream/otpkit/otphttp"
	"github.com/clipstream/otpkit/server"
	"github.com/clipstream/otpkit/services/logging"
	"github.com/clipstream/otpkit/services/notify"
	"github.com/clipstream/otpkit/services/verification"
	"go.uber.org/fx"
)

type AppBuilder struct {
	config    *config.Config
	store     string
	notifier  string
	serveHTTP bool
	fxOptions []fx.Option
	errors    []error
}

func NewApp() *AppBuilder {
	return &AppBuilder{
		fxOptions: make([]fx.Option, 0),
		errors:    make([]error, 0),
	}
}

func (b *AppBuilder) WithConfig(cfg *config.Config) *AppBuilder {
	if cfg == nil {
		b.addError("config cannot be nil")
		return b
	}
	b.config = cfg
	return b
}

func (b *AppBuilder) WithAutoConfig() *AppBuilder {
	cfg := &config.Config{}
	if err := config.LoadConfig(cfg); err != nil {
		b.addError(fmt.Sprintf("failed to load config: %v", err))
		return b
	}
	b.config = cfg
	return b
}

func (b *AppBuilder) WithMemoryStore() *AppBuilder {
	b.store = "memory"
	return b
}

func (b *AppBuilder) WithDatabaseStore() *AppBuilder {
	b.store = "database"
	return b
}

func (b *AppBuilder) WithRedisStore() *AppBuilder {
	b.store = "redis"
	return b
}

func (b *AppBuilder) WithLogNotifier() *AppBuilder {
	b.notifier = "log"
	return b
}

func (b *AppBuilder) WithMailNotifier() *AppBuilder {
	b.notifier = "mail"
	return b
}

func (b *AppBuilder) WithSNSNotifier() *AppBuilder {
	b.notifier = "sns"
	return b
}

func (b *AppBuilder) WithHTTP() *AppBuilder {
	b.serveHTTP = true
	return b
}

func (b *AppBuilder) WithFxOptions(opts ...fx.Option) *AppBuilder {
	b.fxOptions = append(b.fxOptions, opts...)
	return b
}

func (b *AppBuilder) Build() (*App, error) {
	if len(b.errors) > 0 {
		return nil, fmt.Errorf("configuration errors: %v", b.errors)
	}

	if b.config == nil {
		b.WithAutoConfig()
		if len(b.errors) > 0 {
			return nil, fmt.Errorf("configuration errors: %v", b.errors)
		}
	}

	storeOption, err := b.storeOption()
	if err != nil {
		return nil, err
	}

	notifierOption, err := b.notifierOption()
	if err != nil {
		return nil, err
	}

	app := &App{
		config: b.config,
	}

	options := []fx.Option{
		config.NewProvider(b.config),
		logging.Module,
		fx.NopLogger,
		storeOption,
		notifierOption,
		verification.Module,
		fx.Invoke(func(logger *logging.Service, svc *verification.Service) {
			app.logger = logger
			app.verification = svc
		}),
	}

	if b.serveHTTP {
		options = append(options, server.NewProvider(), otphttp.Module)
	}

	options = append(options, b.fxOptions...)

	app.fx = fx.New(options...)
	if err := app.fx.Err(); err != nil {
		return nil, fmt.Errorf("failed to assemble application: %w", err)
	}

	return app, nil
}

func (b *AppBuilder) storeOption() (fx.Option, error) {
	store := b.store
	if store == "" {
		store = b.config.OTP.Store
	}

	switch store {
	case "", "memory":
		return fx.Provide(verification.ProvideMemoryStore), nil
	case "database":
		return fx.Options(
			database.NewProvider(&verification.VerificationCode{}),
			fx.Provide(verification.ProvideGormStore),
		), nil
	case "redis":
		return fx.Provide(verification.ProvideRedisStore), nil
	default:
		return nil, fmt.Errorf("unsupported OTP store: %s (supported: memory, database, redis)", store)
	}
}

func (b *AppBuilder) notifierOption() (fx.Option, error) {
	switch b.notifier {
	case "", "log":
		return notify.LogModule, nil
	case "mail":
		return notify.MailModule, nil
	case "sns":
		return notify.SNSModule, nil
	default:
		return nil, fmt.Errorf("unsupported notifier: %s (supported: log, mail, sns)", b.notifier)
	}
}

func (b *AppBuilder) addError(msg string) {
	b.errors = append(b.errors, fmt.Errorf("%s", msg))
}
