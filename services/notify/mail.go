package notify

import (
	"context"

	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/mail"
)

// MailNotifier delivers verification messages over SMTP for destinations
// that are email addresses.
type MailNotifier struct {
	mail    *mail.Service
	subject string
}

func NewMailNotifier(mailSvc *mail.Service, cfg *config.Config) *MailNotifier {
	return &MailNotifier{
		mail:    mailSvc,
		subject: cfg.Mail.Subject,
	}
}

func (n *MailNotifier) Deliver(ctx context.Context, destination, message string) error {
	return n.mail.SendPlain(ctx, []string{destination}, n.subject, message)
}
