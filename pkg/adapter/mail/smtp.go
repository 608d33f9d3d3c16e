package mail

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wneessen/go-mail"
)

// sender is the part of *mail.Client used to deliver messages.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTP delivers notifications as plain text email.
type SMTP struct {
	client sender
	from   string
}

var _ interfaces.Notifier = &SMTP{}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string `masq:"secret"`
	From     string
}

func New(cfg Config) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create SMTP client",
			goerr.V("host", cfg.Host),
			goerr.V("port", cfg.Port))
	}

	return &SMTP{
		client: client,
		from:   cfg.From,
	}, nil
}

func (x *SMTP) Name() string {
	return "email"
}

func (x *SMTP) Notify(ctx context.Context, msg notify.Message) error {
	m, err := buildMessage(x.from, msg)
	if err != nil {
		return err
	}

	if err := x.client.DialAndSendWithContext(ctx, m); err != nil {
		return goerr.Wrap(err, "failed to send email", goerr.TV(errs.ChannelKey, x.Name()))
	}
	return nil
}

// buildMessage fails with errs.TagPermanent on addresses that no retry can fix.
func buildMessage(from string, msg notify.Message) (*mail.Msg, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, goerr.Wrap(err, "invalid sender address",
			goerr.T(errs.TagPermanent),
			goerr.V("from", from))
	}
	if err := m.To(msg.To); err != nil {
		return nil, goerr.Wrap(err, "invalid recipient address",
			goerr.T(errs.TagPermanent),
			goerr.V("to", msg.To))
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
