package delivery_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavruti/formgate/pkg/delivery"
	"github.com/datavruti/formgate/pkg/storage"
)

func TestDocumentBackendDeliver(t *testing.T) {
	t.Parallel()

	t.Run("writes pretty JSON named after the receipt", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := storage.NewLocal(dir)
		require.NoError(t, err)

		rec := contactRecord(t, map[string]any{
			"name":    "Jane Doe",
			"email":   "jane@co.com",
			"message": "Hello there",
		})

		backend := delivery.NewDocumentBackend(store)
		outcome, err := backend.Deliver(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusDelivered, outcome.Status)
		assert.Equal(t, rec.ReceiptID+".json", outcome.Document)

		raw, err := os.ReadFile(filepath.Join(dir, outcome.Document))
		require.NoError(t, err)

		var doc struct {
			ReceiptID         string         `json:"receiptId"`
			Kind              string         `json:"kind"`
			ReceivedAt        time.Time      `json:"receivedAt"`
			ReceivedAtDisplay string         `json:"receivedAtDisplay"`
			Fields            map[string]any `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, rec.ReceiptID, doc.ReceiptID)
		assert.Equal(t, "contact", doc.Kind)
		assert.True(t, doc.ReceivedAt.Equal(rec.ReceivedAt))
		assert.Equal(t, rec.ReceivedAtDisplay, doc.ReceivedAtDisplay)
		assert.Equal(t, "Jane Doe", doc.Fields["name"])
		assert.Equal(t, "Hello there", doc.Fields["message"])

		// Indented output so documents stay readable without tooling.
		assert.Contains(t, string(raw), "\n  \"receiptId\"")
	})

	t.Run("write failure wraps delivery error", func(t *testing.T) {
		t.Parallel()

		store := failingStore{}
		backend := delivery.NewDocumentBackend(store)

		rec := contactRecord(t, map[string]any{
			"name":    "Jane",
			"email":   "jane@co.com",
			"message": "hi",
		})

		outcome, err := backend.Deliver(context.Background(), rec)
		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrDeliveryFailed)
		assert.Equal(t, delivery.StatusFailed, outcome.Status)
	})

	t.Run("nil record fails", func(t *testing.T) {
		t.Parallel()

		backend := delivery.NewDocumentBackend(failingStore{})
		_, err := backend.Deliver(context.Background(), nil)
		assert.ErrorIs(t, err, delivery.ErrNilRecord)
	})
}

type failingStore struct{}

func (failingStore) Write(ctx context.Context, path string, data []byte) error {
	return storage.ErrFailedToWriteDocument
}

func (failingStore) Exists(ctx context.Context, path string) bool { return false }
