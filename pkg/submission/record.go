package submission

import "time"

// Record is the canonical representation of a validated submission: the
// sanitized fields plus classification, timestamps and a derived identifier.
// It is built once per request and never mutated afterwards.
type Record struct {
	// Kind is the derived submission kind.
	Kind Kind
	// Fields holds the sanitized payload, shape-identical to the input.
	Fields map[string]any
	// ReceivedAt is the moment the submission was accepted, in UTC.
	ReceivedAt time.Time
	// ReceivedAtDisplay is a human-readable rendering of ReceivedAt in the
	// configured display zone (IST by default, a business decision).
	ReceivedAtDisplay string
	// IdentityKey is a filesystem- and subject-safe slug derived from the
	// submitter's name.
	IdentityKey string
	// ReceiptID uniquely identifies this submission:
	// <kind>_<identityKey>_<unix-millis>_<random suffix>.
	ReceiptID string
}

// SubmitterName returns the sanitized name the record was keyed on.
func (r *Record) SubmitterName() string {
	if r.Kind == KindTalentPool {
		return r.stringField(fieldFullName)
	}
	return r.stringField(fieldName)
}

// SubmitterEmail returns the sanitized email address, used as the reply-to
// on staff notifications.
func (r *Record) SubmitterEmail() string {
	return r.stringField(fieldEmail)
}

// Subject returns the notification subject line for this record.
func (r *Record) Subject() string {
	switch r.Kind {
	case KindCandidate:
		return "New Candidate Application: " + r.SubmitterName()
	case KindTalentPool:
		return "New Talent Pool Application: " + r.SubmitterName()
	default:
		return "New Contact Form Submission from " + r.SubmitterName()
	}
}

func (r *Record) stringField(key string) string {
	s, _ := r.Fields[key].(string)
	return s
}
