package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Normalizer classifies sanitized payloads and builds canonical records.
// Safe for concurrent use; it holds only configuration.
type Normalizer struct {
	displayLoc *time.Location
	now        func() time.Time
	suffix     func() string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDisplayLocation sets the timezone used for the human-readable
// timestamp on records. Defaults to Asia/Kolkata.
func WithDisplayLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		if loc != nil {
			n.displayLoc = loc
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithSuffixSource overrides the random receipt suffix source. Intended for tests.
func WithSuffixSource(fn func() string) Option {
	return func(n *Normalizer) {
		if fn != nil {
			n.suffix = fn
		}
	}
}

// NewNormalizer creates a Normalizer with the default IST display zone.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		now:    time.Now,
		suffix: shortSuffix,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.displayLoc == nil {
		// time.FixedZone avoids a tzdata dependency for the default; a real
		// location can be supplied via WithDisplayLocation.
		n.displayLoc = time.FixedZone("IST", 5*3600+1800)
	}
	return n
}

// Normalize validates a sanitized payload and builds its canonical record.
//
// Classification: a formType of "talentPool" selects the talent-pool field
// set (fullName, email); any other payload is a contact submission requiring
// name, email and message, labeled as a candidate application when the type
// field says so. A missing or empty required field yields a
// *MissingFieldError wrapping ErrMissingField.
func (n *Normalizer) Normalize(fields map[string]any) (*Record, error) {
	if fields == nil {
		return nil, ErrNilPayload
	}

	kind := classify(fields)

	nameField := fieldName
	required := []string{fieldName, fieldEmail, fieldMessage}
	if kind == KindTalentPool {
		nameField = fieldFullName
		required = []string{fieldFullName, fieldEmail}
	}

	for _, field := range required {
		if s, ok := fields[field].(string); !ok || strings.TrimSpace(s) == "" {
			return nil, &MissingFieldError{Field: field}
		}
	}

	receivedAt := n.now().UTC()
	identityKey := identityKey(fields[nameField].(string))

	return &Record{
		Kind:              kind,
		Fields:            fields,
		ReceivedAt:        receivedAt,
		ReceivedAtDisplay: receivedAt.In(n.displayLoc).Format("2/1/2006, 3:04:05 pm MST"),
		IdentityKey:       identityKey,
		ReceiptID: fmt.Sprintf("%s_%s_%d_%s",
			kind, identityKey, receivedAt.UnixMilli(), n.suffix()),
	}, nil
}

func classify(fields map[string]any) Kind {
	if formType, _ := fields[fieldFormType].(string); formType == formTypeTalent {
		return KindTalentPool
	}
	if declared, _ := fields[fieldType].(string); declared == typeCandidate {
		return KindCandidate
	}
	return KindContact
}

// identityKey lowercases the chosen name and replaces every character
// outside [a-z0-9] with an underscore, yielding a slug safe for filenames
// and subject lines.
func identityKey(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// shortSuffix returns an 8-character random suffix. A millisecond timestamp
// alone makes collisions between concurrent submissions unlikely, not
// impossible; the suffix closes that gap.
func shortSuffix() string {
	return uuid.NewString()[:8]
}
