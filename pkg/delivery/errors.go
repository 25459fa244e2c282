package delivery

import "errors"

var (
	ErrRenderFailed   = errors.New("failed to render notification")
	ErrDeliveryFailed = errors.New("failed to deliver submission")
	ErrNilRecord      = errors.New("nil submission record")
)
