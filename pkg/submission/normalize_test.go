package submission_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavruti/formgate/pkg/submission"
)

func fixedNormalizer(t *testing.T) *submission.Normalizer {
	t.Helper()
	return submission.NewNormalizer(
		submission.WithClock(func() time.Time {
			return time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
		}),
		submission.WithSuffixSource(func() string { return "abcd1234" }),
	)
}

func TestNormalizeContact(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(t)

	rec, err := n.Normalize(map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@co.com",
		"message": "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, submission.KindContact, rec.Kind)
	assert.Equal(t, "jane_doe", rec.IdentityKey)
	assert.Equal(t, "Jane Doe", rec.SubmitterName())
	assert.Equal(t, "jane@co.com", rec.SubmitterEmail())
	assert.Equal(t, "New Contact Form Submission from Jane Doe", rec.Subject())
	assert.Equal(t, time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC), rec.ReceivedAt)
	assert.Equal(t, "contact_jane_doe_1741944413000_abcd1234", rec.ReceiptID)
}

func TestNormalizeCandidate(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(t)

	rec, err := n.Normalize(map[string]any{
		"type":    "candidate",
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"message": "Please consider my application",
		"skills":  "Spark, Airflow",
	})
	require.NoError(t, err)

	assert.Equal(t, submission.KindCandidate, rec.Kind)
	assert.Equal(t, "New Candidate Application: Ravi Kumar", rec.Subject())
}

func TestNormalizeTalentPool(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(t)

	rec, err := n.Normalize(map[string]any{
		"formType": "talentPool",
		"fullName": "Asha Patel",
		"email":    "asha@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, submission.KindTalentPool, rec.Kind)
	assert.Equal(t, "asha_patel", rec.IdentityKey)
	assert.Equal(t, "Asha Patel", rec.SubmitterName())
	assert.Equal(t, "New Talent Pool Application: Asha Patel", rec.Subject())
}

func TestNormalizeMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload map[string]any
		missing string
	}{
		{
			name:    "contact without message",
			payload: map[string]any{"name": "Jane", "email": "jane@co.com"},
			missing: "message",
		},
		{
			name:    "contact with empty name",
			payload: map[string]any{"name": "  ", "email": "jane@co.com", "message": "hi"},
			missing: "name",
		},
		{
			name:    "contact with non-string email",
			payload: map[string]any{"name": "Jane", "email": 42, "message": "hi"},
			missing: "email",
		},
		{
			name: "talent pool without email",
			payload: map[string]any{
				"formType": "talentPool",
				"fullName": "Asha Patel",
				"skills":   "SQL",
			},
			missing: "email",
		},
		{
			name: "talent pool ignores contact name field",
			payload: map[string]any{
				"formType": "talentPool",
				"name":     "Asha",
				"email":    "asha@example.com",
			},
			missing: "fullName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := fixedNormalizer(t)
			_, err := n.Normalize(tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, submission.ErrMissingField)

			var missingErr *submission.MissingFieldError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, tt.missing, missingErr.Field)
		})
	}
}

func TestNormalizeNilPayload(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(t)
	_, err := n.Normalize(nil)
	assert.ErrorIs(t, err, submission.ErrNilPayload)
}

func TestNormalizeDisplayTimestamp(t *testing.T) {
	t.Parallel()

	// 09:26:53 UTC is 14:56:53 IST (+05:30).
	n := fixedNormalizer(t)

	rec, err := n.Normalize(map[string]any{
		"name":    "Jane",
		"email":   "jane@co.com",
		"message": "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "14/3/2025, 2:56:53 pm IST", rec.ReceivedAtDisplay)
}

func TestNormalizeCustomDisplayLocation(t *testing.T) {
	t.Parallel()

	n := submission.NewNormalizer(
		submission.WithClock(func() time.Time {
			return time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
		}),
		submission.WithSuffixSource(func() string { return "abcd1234" }),
		submission.WithDisplayLocation(time.UTC),
	)

	rec, err := n.Normalize(map[string]any{
		"name":    "Jane",
		"email":   "jane@co.com",
		"message": "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "14/3/2025, 9:26:53 am UTC", rec.ReceivedAtDisplay)
}

func TestIdentityKeyDerivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Jane Doe", "jane_doe"},
		{"punctuation", "Mary-Jane O'Connor", "mary_jane_o_connor"},
		{"digits survive", "Agent 47", "agent_47"},
		{"unicode replaced", "José", "jos_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := fixedNormalizer(t)
			rec, err := n.Normalize(map[string]any{
				"name":    tt.input,
				"email":   "a@b.com",
				"message": "hi",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rec.IdentityKey)
		})
	}
}

func TestRecordsAreRequestScoped(t *testing.T) {
	t.Parallel()

	n := submission.NewNormalizer()

	first, err := n.Normalize(map[string]any{"name": "Jane", "email": "a@b.com", "message": "x"})
	require.NoError(t, err)
	second, err := n.Normalize(map[string]any{"name": "Jane", "email": "a@b.com", "message": "x"})
	require.NoError(t, err)

	// Identical payloads still get distinct receipt identifiers.
	assert.NotEqual(t, first.ReceiptID, second.ReceiptID)
}
