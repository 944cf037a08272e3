package notify

import (
	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"github.com/clipstream/otpkit/services/mail"
	"go.uber.org/fx"
)

func ProvideLogNotifier(logger *logging.Service) Notifier {
	return NewLogNotifier(logger)
}

func ProvideMailNotifier(mailSvc *mail.Service, cfg *config.Config) Notifier {
	return NewMailNotifier(mailSvc, cfg)
}

func ProvideSNSNotifier(cfg *config.Config, logger *logging.Service) (Notifier, error) {
	return NewSNSNotifier(cfg, logger)
}

// LogModule is the default delivery channel; the app builder swaps in the
// mail or SNS module when one is selected.
var LogModule = fx.Options(
	fx.Provide(ProvideLogNotifier),
)

var MailModule = fx.Options(
	mail.Module,
	fx.Provide(ProvideMailNotifier),
)

var SNSModule = fx.Options(
	fx.Provide(ProvideSNSNotifier),
)
