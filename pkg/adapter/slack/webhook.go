package slack

import (
	"context"
	"fmt"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Webhook posts notifications to a Slack incoming webhook.
type Webhook struct {
	url string
}

var _ interfaces.Notifier = &Webhook{}

func NewWebhook(url string) *Webhook {
	return &Webhook{url: url}
}

func (x *Webhook) Name() string {
	return "slack"
}

func (x *Webhook) Notify(ctx context.Context, msg notify.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	payload := &slack.WebhookMessage{
		Text: fmt.Sprintf("*%s*\nTo: %s\n%s", msg.Subject, msg.To, msg.Body),
	}

	if err := slack.PostWebhookContext(ctx, x.url, payload); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook", goerr.TV(errs.ChannelKey, x.Name()))
	}
	return nil
}
