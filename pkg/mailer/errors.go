package mailer

import "errors"

var (
	ErrInvalidConfig = errors.New("mailer: invalid configuration")
	ErrInvalidParams = errors.New("mailer: invalid send parameters")
	ErrFailedToSend  = errors.New("mailer: failed to send email")
)
