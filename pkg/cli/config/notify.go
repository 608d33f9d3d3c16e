package config

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/docsbotai/dashboard/pkg/adapter/mail"
	"github.com/docsbotai/dashboard/pkg/adapter/slack"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/service/notifier"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/docsbotai/dashboard/pkg/utils/retry"
	"github.com/urfave/cli/v3"
)

type Notify struct {
	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string `masq:"secret"`
	smtpFrom     string

	slackWebhookURL string `masq:"secret"`
	console         bool

	retryAttempts int
	retryDelay    time.Duration
}

func (x *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server for invitation emails",
			Category:    "Notification",
			Sources:     cli.EnvVars("DOCSBOT_SMTP_HOST"),
			Destination: &x.smtpHost,
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP server port",
			Category:    "Notification",
			Value:       587,
			Sources:     cli.EnvVars("DOCSBOT_SMTP_PORT"),
			Destination: &x.smtpPort,
		},
		&cli.StringFlag{
			Name:        "smtp-username",
			Usage:       "SMTP username, PLAIN auth is used when set",
			Category:    "Notification",
			Sources:     cli.EnvVars("DOCSBOT_SMTP_USERNAME"),
			Destination: &x.smtpUsername,
		},
		&cli.StringFlag{
			Name:        "smtp-password",
			Usage:       "SMTP password",
			Category:    "Notification",
			Sources:     cli.EnvVars("DOCSBOT_SMTP_PASSWORD"),
			Destination: &x.smtpPassword,
		},
		&cli.StringFlag{
			Name:        "smtp-from",
			Usage:       "Sender address of invitation emails",
			Category:    "Notification",
			Sources:     cli.EnvVars("DOCSBOT_SMTP_FROM"),
			Destination: &x.smtpFrom,
		},
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for team notifications",
			Category:    "Notification",
			Sources:     cli.EnvVars("DOCSBOT_SLACK_WEBHOOK_URL"),
			Destination: &x.slackWebhookURL,
		},
		&cli.BoolFlag{
			Name:        "notify-console",
			Usage:       "Print notifications to stdout",
			Category:    "Notification",
			Sources:     cli.EnvVars("DOCSBOT_NOTIFY_CONSOLE"),
			Destination: &x.console,
		},
		&cli.IntFlag{
			Name:        "notify-retry-attempts",
			Usage:       "Attempts per notification channel",
			Category:    "Notification",
			Value:       retry.DefaultMaxAttempts,
			Sources:     cli.EnvVars("DOCSBOT_NOTIFY_RETRY_ATTEMPTS"),
			Destination: &x.retryAttempts,
		},
		&cli.DurationFlag{
			Name:        "notify-retry-delay",
			Usage:       "Wait between notification attempts",
			Category:    "Notification",
			Sources:     cli.EnvVars("DOCSBOT_NOTIFY_RETRY_DELAY"),
			Destination: &x.retryDelay,
		},
	}
}

func (x Notify) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("smtp_host", x.smtpHost),
		slog.Int("smtp_port", x.smtpPort),
		slog.String("smtp_from", x.smtpFrom),
		slog.Bool("slack", x.slackWebhookURL != ""),
		slog.Bool("console", x.console),
		slog.Int("retry_attempts", x.retryAttempts),
		slog.Duration("retry_delay", x.retryDelay),
	)
}

// Configure builds a dispatcher over every configured channel. With no channel
// configured the dispatcher drops messages.
func (x *Notify) Configure(ctx context.Context) (*notifier.Dispatcher, error) {
	var channels []interfaces.Notifier

	if x.smtpHost != "" {
		smtp, err := mail.New(mail.Config{
			Host:     x.smtpHost,
			Port:     x.smtpPort,
			Username: x.smtpUsername,
			Password: x.smtpPassword,
			From:     x.smtpFrom,
		})
		if err != nil {
			return nil, err
		}
		channels = append(channels, smtp)
	}

	if x.slackWebhookURL != "" {
		channels = append(channels, slack.NewWebhook(x.slackWebhookURL))
	}

	if x.console {
		channels = append(channels, notifier.NewConsoleNotifier(os.Stdout))
	}

	policy := retry.Policy{
		MaxAttempts: x.retryAttempts,
		Delay:       x.retryDelay,
	}
	d := notifier.NewDispatcher(policy, channels...)
	if len(channels) == 0 {
		logging.From(ctx).Warn("No notification channel is configured")
	}
	return d, nil
}
