package mailer

import (
	"context"
	"fmt"
	"regexp"
)

// Sender sends a single transactional email.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams are the parameters for one outbound message.
type SendParams struct {
	To       string // Recipient address
	ReplyTo  string // Optional; replies go to the submitter
	Subject  string
	BodyHTML string
	Tag      string // Optional, for provider-side analytics
}

// emailRegex is a light format check, not full RFC validation.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the parameters before any provider call is made.
func (p SendParams) Validate() error {
	if p.To == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && !emailRegex.MatchString(p.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}
