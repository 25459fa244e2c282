package delivery

import (
	"context"
	"errors"

	"github.com/datavruti/formgate/pkg/mailer"
	"github.com/datavruti/formgate/pkg/submission"
)

// EmailConfig holds the fixed destination for staff notifications.
type EmailConfig struct {
	DestinationEmail string `env:"DELIVERY_TO_EMAIL" envDefault:"sales@datavruti.com"`
}

// EmailBackend delivers records as HTML notifications through a
// transactional mailer. A nil sender is a valid state for deployments
// without email credentials: delivery degrades to a skipped outcome so the
// submitter still gets an acknowledgement.
type EmailBackend struct {
	cfg    EmailConfig
	sender mailer.Sender
}

// NewEmailBackend creates an email delivery backend. Pass a nil sender when
// the mailer is not configured.
func NewEmailBackend(cfg EmailConfig, sender mailer.Sender) *EmailBackend {
	return &EmailBackend{cfg: cfg, sender: sender}
}

// Deliver renders the record and sends it with the submitter's address set
// as reply-to. Send failures propagate; they are terminal for the
// submission.
func (b *EmailBackend) Deliver(ctx context.Context, rec *submission.Record) (Outcome, error) {
	if rec == nil {
		return Outcome{Status: StatusFailed}, ErrNilRecord
	}
	if b.sender == nil {
		return Outcome{
			Status: StatusSkipped,
			Reason: "email sender not configured",
		}, nil
	}

	html, err := renderNotification(rec)
	if err != nil {
		return Outcome{Status: StatusFailed}, err
	}

	err = b.sender.Send(ctx, mailer.SendParams{
		To:       b.cfg.DestinationEmail,
		ReplyTo:  rec.SubmitterEmail(),
		Subject:  rec.Subject(),
		BodyHTML: html,
		Tag:      string(rec.Kind),
	})
	if err != nil {
		return Outcome{Status: StatusFailed}, errors.Join(ErrDeliveryFailed, err)
	}

	return Outcome{Status: StatusDelivered}, nil
}
