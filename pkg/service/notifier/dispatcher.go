package notifier

import (
	"context"
	"errors"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/docsbotai/dashboard/pkg/utils/retry"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatcher fans a message out to every channel. Each channel send is retried
// independently under the policy; a failing channel does not stop the others.
// With no channels the message is discarded.
type Dispatcher struct {
	channels []interfaces.Notifier
	policy   retry.Policy
}

var _ interfaces.Notifier = &Dispatcher{}

func NewDispatcher(policy retry.Policy, channels ...interfaces.Notifier) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		policy:   policy,
	}
}

func (x *Dispatcher) Name() string {
	return "dispatcher"
}

// Channels returns the names of the configured channels.
func (x *Dispatcher) Channels() []string {
	names := make([]string, len(x.channels))
	for i, ch := range x.channels {
		names[i] = ch.Name()
	}
	return names
}

func (x *Dispatcher) Notify(ctx context.Context, msg notify.Message) error {
	if len(x.channels) == 0 {
		logging.From(ctx).Debug("no notification channel, message discarded", "subject", msg.Subject)
		return nil
	}

	if err := msg.Validate(); err != nil {
		return goerr.Wrap(err, "notification not sent", goerr.V("subject", msg.Subject))
	}

	var failed []error
	for _, ch := range x.channels {
		err := x.policy.Do(ctx, "notify:"+ch.Name(), func(ctx context.Context) error {
			return ch.Notify(ctx, msg)
		})
		if err != nil {
			failed = append(failed, goerr.Wrap(err, "channel failed", goerr.TV(errs.ChannelKey, ch.Name())))
			continue
		}
		logging.From(ctx).Info("notification sent", "channel", ch.Name(), "subject", msg.Subject)
	}

	if len(failed) > 0 {
		return goerr.Wrap(errors.Join(failed...), "notification failed",
			goerr.V("failed_channels", len(failed)),
			goerr.V("channels", len(x.channels)))
	}
	return nil
}
