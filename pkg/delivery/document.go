package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/datavruti/formgate/pkg/storage"
	"github.com/datavruti/formgate/pkg/submission"
)

// DocumentBackend persists records as pretty-printed JSON documents named
// from the receipt identifier. A failed write is fatal for the submission.
type DocumentBackend struct {
	store storage.DocumentStore
}

// NewDocumentBackend creates a document-store delivery backend.
func NewDocumentBackend(store storage.DocumentStore) *DocumentBackend {
	return &DocumentBackend{store: store}
}

// submissionDocument is the persisted schema. Fields keeps the sanitized
// payload shape so staff tooling can read any form variant.
type submissionDocument struct {
	ReceiptID         string         `json:"receiptId"`
	Kind              string         `json:"kind"`
	ReceivedAt        time.Time      `json:"receivedAt"`
	ReceivedAtDisplay string         `json:"receivedAtDisplay"`
	Fields            map[string]any `json:"fields"`
}

// Deliver writes the record as <ReceiptID>.json under the store root.
func (b *DocumentBackend) Deliver(ctx context.Context, rec *submission.Record) (Outcome, error) {
	if rec == nil {
		return Outcome{Status: StatusFailed}, ErrNilRecord
	}

	data, err := json.MarshalIndent(submissionDocument{
		ReceiptID:         rec.ReceiptID,
		Kind:              string(rec.Kind),
		ReceivedAt:        rec.ReceivedAt,
		ReceivedAtDisplay: rec.ReceivedAtDisplay,
		Fields:            rec.Fields,
	}, "", "  ")
	if err != nil {
		return Outcome{Status: StatusFailed}, errors.Join(ErrDeliveryFailed, err)
	}

	name := rec.ReceiptID + ".json"
	if err := b.store.Write(ctx, name, data); err != nil {
		return Outcome{Status: StatusFailed}, errors.Join(ErrDeliveryFailed, err)
	}

	return Outcome{Status: StatusDelivered, Document: name}, nil
}
