package notify

import (
	"context"

	"github.com/clipstream/otpkit/services/logging"
	"go.uber.org/zap"
)

// Notifier delivers a verification message to a destination out-of-band.
// Delivery is best-effort: the verification engine logs failures and never
// surfaces them to the caller that requested the code.
type Notifier interface {
	Deliver(ctx context.Context, destination, message string) error
}

// LogNotifier is the fallback channel when no SMS or mail gateway is
// configured. The message, code included, ends up in the application log, so
// it is only suitable for development.
type LogNotifier struct {
	logger *logging.Service
}

func NewLogNotifier(logger *logging.Service) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Deliver(_ context.Context, destination, message string) error {
	n.logger.Info("delivering verification message via log",
		zap.String("destination", destination),
		zap.String("message", message))
	return nil
}
