package delivery

import (
	"context"

	"github.com/datavruti/formgate/pkg/submission"
)

// Status classifies the result of a delivery attempt.
type Status string

const (
	// StatusDelivered means the record reached staff (mailbox or store).
	StatusDelivered Status = "delivered"
	// StatusSkipped means the backend was not configured to deliver and the
	// submission should still be acknowledged.
	StatusSkipped Status = "skipped"
	// StatusFailed means the attempt failed; the accompanying error has the
	// cause.
	StatusFailed Status = "failed"
)

// Outcome describes what happened to a record handed to a Backend.
type Outcome struct {
	Status Status
	// Reason is set for skipped outcomes.
	Reason string
	// Document is the stored document name for document-store deliveries.
	Document string
}

// Backend attempts to make a canonical record durable or visible to staff.
// Each record is delivered at most once; retry policy, if any, lives outside
// this package.
type Backend interface {
	Deliver(ctx context.Context, rec *submission.Record) (Outcome, error)
}
