package mail

import (
	"github.com/wneessen/go-mail"
)

var BuildMessage = buildMessage

type Sender = sender

// NewWithSender returns an SMTP notifier that delivers through s.
func NewWithSender(s sender, from string) *SMTP {
	return &SMTP{client: s, from: from}
}

type Msg = mail.Msg
