package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/datavruti/formgate/pkg/clientip"
	"github.com/datavruti/formgate/pkg/delivery"
	"github.com/datavruti/formgate/pkg/logger"
	"github.com/datavruti/formgate/pkg/sanitizer"
	"github.com/datavruti/formgate/pkg/submission"
)

// maxBodyBytes caps submission payloads. Form posts are tiny; anything
// bigger is abuse.
const maxBodyBytes = 64 << 10

// User-facing messages. Kept deliberately generic: the threat and
// missing-field responses must not reveal which field failed.
const (
	msgInvalidBody   = "Invalid request body"
	msgThreat        = "Invalid input detected. Please remove any HTML or script content."
	msgMissingFields = "Missing required fields"
	msgSubmitted     = "Form submitted successfully. We'll get back to you soon!"
	msgSkipped       = "Form submitted successfully (email not configured)"
)

// Handler serves the form submission endpoints.
type Handler struct {
	log          *slog.Logger
	normalizer   *submission.Normalizer
	backend      delivery.Backend
	supportEmail string
}

// NewHandler wires the intake pipeline behind HTTP. The support email is
// surfaced in the delivery-failure message so submitters always have a
// working fallback channel.
func NewHandler(log *slog.Logger, normalizer *submission.Normalizer, backend delivery.Backend, supportEmail string) *Handler {
	return &Handler{
		log:          log,
		normalizer:   normalizer,
		backend:      backend,
		supportEmail: supportEmail,
	}
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, nil)
}

// SubmitTalentPool handles POST /api/talent-pool. The route implies the
// form variant, so the discriminator is filled in when the client omits it.
func (h *Handler) SubmitTalentPool(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, map[string]any{"formType": "talentPool"})
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, preset map[string]any) {
	ctx := r.Context()

	var fields map[string]any
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields == nil {
		writeJSON(w, http.StatusBadRequest, Envelope{Error: msgInvalidBody})
		return
	}
	for key, value := range preset {
		if _, ok := fields[key]; !ok {
			fields[key] = value
		}
	}

	// Threat scan runs on the raw payload, before any scrubbing, so hostile
	// input is rejected rather than silently cleaned and accepted.
	if field, found := sanitizer.ScanFields(fields); found {
		h.log.LogAttrs(ctx, slog.LevelWarn, "submission rejected: injection attempt",
			logger.Field(field),
			logger.ClientIP(clientip.GetIP(r)),
		)
		writeJSON(w, http.StatusBadRequest, Envelope{Error: msgThreat})
		return
	}

	rec, err := h.normalizer.Normalize(sanitizer.Map(fields))
	if err != nil {
		if errors.Is(err, submission.ErrMissingField) {
			h.log.InfoContext(ctx, "submission rejected: incomplete payload",
				slog.String("reason", err.Error()),
			)
			writeJSON(w, http.StatusBadRequest, Envelope{Error: msgMissingFields})
			return
		}
		writeJSON(w, http.StatusBadRequest, Envelope{Error: msgInvalidBody})
		return
	}

	outcome, err := h.backend.Deliver(ctx, rec)
	if err != nil {
		h.log.LogAttrs(ctx, slog.LevelError, "submission delivery failed",
			logger.ReceiptID(rec.ReceiptID),
			logger.Kind(string(rec.Kind)),
			logger.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Envelope{
			Error: fmt.Sprintf("Failed to submit form. Please try again or contact us directly at %s", h.supportEmail),
		})
		return
	}

	switch outcome.Status {
	case delivery.StatusSkipped:
		h.log.LogAttrs(ctx, slog.LevelWarn, "submission accepted without delivery",
			logger.ReceiptID(rec.ReceiptID),
			slog.String("reason", outcome.Reason),
		)
		writeJSON(w, http.StatusOK, Envelope{Success: true, Message: msgSkipped})
	default:
		h.log.LogAttrs(ctx, slog.LevelInfo, "submission delivered",
			logger.ReceiptID(rec.ReceiptID),
			logger.Kind(string(rec.Kind)),
		)
		writeJSON(w, http.StatusOK, Envelope{
			Success: true,
			Message: msgSubmitted,
			File:    outcome.Document,
		})
	}
}
