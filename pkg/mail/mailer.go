package mail

import (
	"context"

	"github.com/planbord/planbord/internal/config"
	"github.com/planbord/planbord/internal/fault"
	log "github.com/sirupsen/logrus"
	gomail "github.com/wneessen/go-mail"
)

// Mailer sends a single HTML email. Delivery is synchronously awaited but
// never retried or queued.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, htmlBody string) error
}

type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(cfg config.Mail) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Pass),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fault.New(fault.MailDeliveryFailed, "mail delivery failed", err)
	}
	if err := msg.To(to); err != nil {
		return fault.New(fault.MailDeliveryFailed, "mail delivery failed", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Errorf("failed to send mail to %s: %v", to, err)
		return fault.New(fault.MailDeliveryFailed, "mail delivery failed", err)
	}
	log.Debugf("Sent mail to %s: %s", to, subject)
	return nil
}
