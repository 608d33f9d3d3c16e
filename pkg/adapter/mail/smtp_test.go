package mail_test

import (
	"context"
	"errors"
	"testing"

	"github.com/docsbotai/dashboard/pkg/adapter/mail"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (x *fakeSender) DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error {
	if x.err != nil {
		return x.err
	}
	x.sent = append(x.sent, messages...)
	return nil
}

func TestBuildMessage(t *testing.T) {
	t.Run("valid message", func(t *testing.T) {
		m, err := mail.BuildMessage("noreply@docsbot.example", notify.Message{
			To:      "alice@example.com",
			Subject: "You were added to Acme",
			Body:    "hello",
		})
		gt.NoError(t, err).Required()
		to := m.GetTo()
		gt.A(t, to).Length(1).Required()
		gt.Equal(t, to[0].Address, "alice@example.com")
	})

	t.Run("missing recipient is permanent", func(t *testing.T) {
		_, err := mail.BuildMessage("noreply@docsbot.example", notify.Message{Subject: "x"})
		gt.Error(t, err).Required()
		gt.True(t, goerr.HasTag(err, errs.TagPermanent))
	})

	t.Run("malformed recipient is permanent", func(t *testing.T) {
		_, err := mail.BuildMessage("noreply@docsbot.example", notify.Message{To: "not an address", Subject: "x"})
		gt.Error(t, err).Required()
		gt.True(t, goerr.HasTag(err, errs.TagPermanent))
	})

	t.Run("malformed sender is permanent", func(t *testing.T) {
		_, err := mail.BuildMessage("", notify.Message{To: "alice@example.com", Subject: "x"})
		gt.Error(t, err).Required()
		gt.True(t, goerr.HasTag(err, errs.TagPermanent))
	})
}

func TestSMTPNotify(t *testing.T) {
	ctx := context.Background()
	msg := notify.Message{To: "alice@example.com", Subject: "hi", Body: "body"}

	t.Run("delivers through the sender", func(t *testing.T) {
		s := &fakeSender{}
		n := mail.NewWithSender(s, "noreply@docsbot.example")
		gt.Equal(t, n.Name(), "email")
		gt.NoError(t, n.Notify(ctx, msg))
		gt.A(t, s.sent).Length(1)
	})

	t.Run("send failure is retryable", func(t *testing.T) {
		s := &fakeSender{err: errors.New("connection refused")}
		err := mail.NewWithSender(s, "noreply@docsbot.example").Notify(ctx, msg)
		gt.Error(t, err).Required()
		gt.False(t, goerr.HasTag(err, errs.TagPermanent))
	})
}
