package notify

import (
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
)

// Message is a notification delivered to one recipient over every configured channel.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate reports problems that retrying cannot fix.
func (x Message) Validate() error {
	if x.To == "" {
		return goerr.New("recipient has no email address", goerr.T(errs.TagPermanent))
	}
	if x.Subject == "" {
		return goerr.New("empty subject", goerr.T(errs.TagPermanent))
	}
	return nil
}
